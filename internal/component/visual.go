// internal/component/visual.go
package component

import "image/color"

// PopEffect — визуальный эффект исчезновения сбитой цели.
type PopEffect struct {
	Color     color.RGBA
	Timer     float64 // Сколько времени эффект уже активен
	Duration  float64 // Общая продолжительность эффекта
	MaxRadius float64
}
