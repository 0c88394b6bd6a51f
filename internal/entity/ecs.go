// internal/entity/ecs.go
package entity

import (
	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/types"
)

type ECS struct {
	GameTime     float64
	NextID       types.EntityID
	Positions    map[types.EntityID]*component.Position
	Renderables  map[types.EntityID]*component.Renderable
	Targets      map[types.EntityID]*component.Target
	Turrets      map[types.EntityID]*component.TurretComponent
	RotateTweens map[types.EntityID]*component.RotateTween
	PopEffects   map[types.EntityID]*component.PopEffect
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Positions:    make(map[types.EntityID]*component.Position),
		Renderables:  make(map[types.EntityID]*component.Renderable),
		Targets:      make(map[types.EntityID]*component.Target),
		Turrets:      make(map[types.EntityID]*component.TurretComponent),
		RotateTweens: make(map[types.EntityID]*component.RotateTween),
		PopEffects:   make(map[types.EntityID]*component.PopEffect),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Renderables, id)
	delete(ecs.Targets, id)
	delete(ecs.Turrets, id)
	delete(ecs.RotateTweens, id)
	delete(ecs.PopEffects, id)
}
