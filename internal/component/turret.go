// internal/component/turret.go
package component

import "go-turret-shooter/internal/utils"

// TurretComponent отвечает за вращение "головы" турели.
type TurretComponent struct {
	// Facing - текущее направление ствола (вектор в координатах сцены).
	Facing utils.Vec2
	// Rotation - накопленный поворот спрайта в градусах, по часовой стрелке.
	Rotation float64
	// Width, Height - размеры треугольника турели.
	Width, Height float64
}

// RotateTween — активная анимация поворота турели.
type RotateTween struct {
	From       float64 // Rotation в момент старта, градусы
	Delta      float64 // на сколько повернуть, градусы (по часовой)
	Elapsed    float64
	Duration   float64
	Facing     utils.Vec2 // станет TurretComponent.Facing после завершения
	OnComplete func()
}

// Progress возвращает долю выполненной анимации в [0, 1].
func (t *RotateTween) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return utils.Clamp01(t.Elapsed / t.Duration)
}
