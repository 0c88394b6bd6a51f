// internal/app/layout.go
package app

import (
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/utils"
)

// Layout — расположение объектов сцены (координаты сцены, ось Y вверх).
type Layout struct {
	Field        utils.Frame
	FieldWidth   float64
	FieldHeight  float64
	Turret       utils.Vec2
	TurretFacing utils.Vec2
	// Центр кнопки SHOOT в экранных координатах
	ButtonX, ButtonY int
	// Targets — фиксированные локальные позиции целей; если пусто, цели расставляются случайно.
	Targets []utils.Vec2
}

// DefaultLayout повторяет раскладку экрана: поле целей сверху, турель и кнопка внизу.
func DefaultLayout() Layout {
	w := float64(config.ScreenWidth)
	h := float64(config.ScreenHeight)
	return Layout{
		Field:        utils.Frame{Origin: utils.V(0, h*config.FieldOriginYFactor)},
		FieldWidth:   w,
		FieldHeight:  h * config.FieldHeightFactor,
		Turret:       utils.V(w*config.TurretXFactor, h*config.TurretYFactor),
		TurretFacing: utils.V(0, config.TurretHeight*0.5),
		ButtonX:      int(w * config.ShootButtonXFactor),
		ButtonY:      int(h - h*config.ShootButtonYFactor),
	}
}
