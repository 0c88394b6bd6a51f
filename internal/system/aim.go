// internal/system/aim.go
package system

import (
	"errors"
	"fmt"

	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/entity"
	"go-turret-shooter/internal/types"
	"go-turret-shooter/internal/utils"
)

var (
	// ErrTurnInProgress — турель ещё не закончила предыдущий поворот.
	ErrTurnInProgress = errors.New("turn already in progress")
	// ErrNotATurret — у сущности нет TurretComponent.
	ErrNotATurret = errors.New("entity is not a turret")
)

// RotationDelta возвращает поворот в градусах (по часовой стрелке),
// который совмещает currentFacing с targetDirection.
func RotationDelta(currentFacing, targetDirection utils.Vec2) float64 {
	return -utils.RadToDeg(utils.AngleSigned(currentFacing, targetDirection))
}

// AimSystem поворачивает турели анимацией фиксированной длительности.
type AimSystem struct {
	ecs      *entity.ECS
	duration float64
}

func NewAimSystem(ecs *entity.ECS, duration float64) *AimSystem {
	return &AimSystem{ecs: ecs, duration: duration}
}

// TurnToward запускает поворот турели к targetDirection и сразу возвращается.
// onComplete вызывается ровно один раз из Update после окончания анимации,
// затем Facing турели становится равным targetDirection.
func (s *AimSystem) TurnToward(turretID types.EntityID, targetDirection utils.Vec2, onComplete func()) error {
	turret, ok := s.ecs.Turrets[turretID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotATurret, turretID)
	}
	if _, busy := s.ecs.RotateTweens[turretID]; busy {
		return ErrTurnInProgress
	}
	s.ecs.RotateTweens[turretID] = &component.RotateTween{
		From:       turret.Rotation,
		Delta:      RotationDelta(turret.Facing, targetDirection),
		Duration:   s.duration,
		Facing:     targetDirection,
		OnComplete: onComplete,
	}
	return nil
}

// Busy сообщает, идёт ли поворот турели.
func (s *AimSystem) Busy(turretID types.EntityID) bool {
	_, busy := s.ecs.RotateTweens[turretID]
	return busy
}

// Update продвигает все активные повороты на deltaTime секунд.
func (s *AimSystem) Update(deltaTime float64) {
	for id, tween := range s.ecs.RotateTweens {
		turret, ok := s.ecs.Turrets[id]
		if !ok {
			delete(s.ecs.RotateTweens, id)
			continue
		}
		tween.Elapsed += deltaTime
		progress := tween.Progress()
		turret.Rotation = utils.Lerp(tween.From, tween.From+tween.Delta, progress)
		if progress < 1 {
			continue
		}

		// Пока идёт колбэк, поворот считается незавершённым.
		if tween.OnComplete != nil {
			tween.OnComplete()
		}
		turret.Facing = tween.Facing
		delete(s.ecs.RotateTweens, id)
	}
}
