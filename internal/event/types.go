// internal/event/types.go
package event

import "go-turret-shooter/internal/types"

// EventType — тип события раунда
type EventType string

const (
	ShotFired      EventType = "ShotFired"      // Турель начала поворот к цели
	TargetHit      EventType = "TargetHit"      // Цель сбита
	TargetsCleared EventType = "TargetsCleared" // Все цели раунда сбиты
)

// ShotData — данные выстрела, общие для всех событий раунда.
// В TargetsCleared лежит последнее попадание, Remaining == 0.
type ShotData struct {
	TargetID  types.EntityID
	X, Y      float64 // позиция цели в координатах сцены
	Rotation  float64 // поворот турели, градусы
	Remaining int     // сколько целей осталось после события
}
