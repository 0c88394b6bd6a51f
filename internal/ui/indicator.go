// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок в углу экрана, цвет которого показывает фазу координатора.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	phase      component.Phase
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// SetPhase запоминает фазу; смена фазы запускает короткую пульсацию.
func (i *StateIndicator) SetPhase(phase component.Phase) {
	if phase != i.phase {
		i.phase = phase
		i.LastChange = time.Now()
	}
}

// PhaseColor возвращает цвет индикатора для фазы.
func PhaseColor(phase component.Phase) color.RGBA {
	switch phase {
	case component.PhaseAiming:
		return config.AimingStateColor
	case component.PhaseCleared:
		return config.ClearedStateColor
	default:
		return config.IdleStateColor
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image) {
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, PhaseColor(i.phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, config.StrokeWidth, config.TextLightColor, true)
}
