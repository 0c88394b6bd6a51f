// internal/system/visual_effect.go
package system

import (
	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/entity"
	"go-turret-shooter/internal/types"
	"go-turret-shooter/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами, такими как исчезновение сбитой цели.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// SpawnPop создаёт эффект исчезновения в точке сцены.
func (s *VisualEffectSystem) SpawnPop(at utils.Vec2) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Vec2: at}
	s.ecs.PopEffects[id] = &component.PopEffect{
		Color:     config.PopColor,
		Duration:  config.PopDuration,
		MaxRadius: config.PopMaxRadius,
	}
	return id
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, pop := range s.ecs.PopEffects {
		pop.Timer += deltaTime
		if pop.Timer >= pop.Duration {
			// Эффект завершился, удаляем его
			s.ecs.RemoveEntity(id)
		}
	}
}

// PopProgress возвращает долю выполнения эффекта в [0, 1].
func PopProgress(pop *component.PopEffect) float64 {
	if pop.Duration <= 0 {
		return 1
	}
	return utils.Clamp01(pop.Timer / pop.Duration)
}
