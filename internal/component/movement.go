// internal/component/movement.go
package component

import "go-turret-shooter/internal/utils"

// Position — компонент позиции.
// Для целей хранится в локальных координатах поля, для турели — в координатах сцены.
type Position struct {
	utils.Vec2
}
