// internal/system/target_registry.go
package system

import (
	"errors"
	"fmt"
	"math"

	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/entity"
	"go-turret-shooter/internal/types"
	"go-turret-shooter/internal/utils"
)

var (
	// ErrEmptyRegistry — поиск ближайшей цели при отсутствии живых целей.
	ErrEmptyRegistry = errors.New("no live targets")
	// ErrUnknownTarget — удаление цели, которой нет среди живых.
	ErrUnknownTarget = errors.New("unknown target")
	// ErrInvalidSpawn — отрицательное количество или размеры поля.
	ErrInvalidSpawn = errors.New("invalid spawn parameters")
)

// TargetInfo — идентификатор цели и её позиция.
type TargetInfo struct {
	ID       types.EntityID
	Position utils.Vec2
}

// TargetRegistry владеет живыми целями раунда.
// Цели хранятся в ECS по ID, порядок создания — в order.
type TargetRegistry struct {
	ecs   *entity.ECS
	rng   *utils.PRNGService
	order []types.EntityID
}

func NewTargetRegistry(ecs *entity.ECS, rng *utils.PRNGService) *TargetRegistry {
	return &TargetRegistry{ecs: ecs, rng: rng}
}

// Spawn создаёт count целей в случайных целых точках [0, width] x [0, height]
// (локальные координаты поля). Пересечения целей допускаются.
func (r *TargetRegistry) Spawn(count int, width, height float64) ([]types.EntityID, error) {
	if count < 0 || width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: count=%d bounds=%gx%g", ErrInvalidSpawn, count, width, height)
	}
	ids := make([]types.EntityID, 0, count)
	for i := 0; i < count; i++ {
		pos := utils.V(
			float64(r.rng.IntInclusive(0, width)),
			float64(r.rng.IntInclusive(0, height)),
		)
		ids = append(ids, r.add(pos))
	}
	return ids, nil
}

// Add регистрирует цель в заданной локальной позиции.
func (r *TargetRegistry) Add(pos utils.Vec2) types.EntityID {
	return r.add(pos)
}

func (r *TargetRegistry) add(pos utils.Vec2) types.EntityID {
	id := r.ecs.NewEntity()
	r.ecs.Positions[id] = &component.Position{Vec2: pos}
	r.ecs.Targets[id] = &component.Target{}
	r.ecs.Renderables[id] = &component.Renderable{
		Color:     config.TargetColor,
		Radius:    config.TargetRadius,
		Scale:     1,
		HasStroke: true,
	}
	r.order = append(r.order, id)
	return id
}

// NearestTo переводит позицию каждой живой цели в систему отсчёта source
// через frame и возвращает ближайшую. При равных расстояниях побеждает
// цель, созданная раньше.
func (r *TargetRegistry) NearestTo(source utils.Vec2, frame utils.Frame) (TargetInfo, error) {
	var nearest TargetInfo
	found := false
	minDistance := math.MaxFloat64
	for _, id := range r.order {
		if _, ok := r.ecs.Targets[id]; !ok {
			continue
		}
		world := frame.ToWorld(r.ecs.Positions[id].Vec2)
		distance := utils.Distance(world, source)
		if !found || distance < minDistance {
			minDistance = distance
			nearest = TargetInfo{ID: id, Position: world}
			found = true
		}
	}
	if !found {
		return TargetInfo{}, ErrEmptyRegistry
	}
	return nearest, nil
}

// Remove убирает живую цель. Повторное удаление — ошибка.
func (r *TargetRegistry) Remove(id types.EntityID) error {
	if _, ok := r.ecs.Targets[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTarget, id)
	}
	r.ecs.RemoveEntity(id)
	r.compact()
	return nil
}

// compact выкидывает удалённые ID из order, когда их становится больше половины.
func (r *TargetRegistry) compact() {
	if len(r.order) < 2*len(r.ecs.Targets) {
		return
	}
	live := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.ecs.Targets[id]; ok {
			live = append(live, id)
		}
	}
	r.order = live
}

// Count — количество живых целей.
func (r *TargetRegistry) Count() int {
	return len(r.ecs.Targets)
}

// Get возвращает живую цель по ID (позиция локальная).
func (r *TargetRegistry) Get(id types.EntityID) (TargetInfo, bool) {
	if _, ok := r.ecs.Targets[id]; !ok {
		return TargetInfo{}, false
	}
	return TargetInfo{ID: id, Position: r.ecs.Positions[id].Vec2}, true
}

// Live возвращает живые цели в порядке создания (позиции локальные).
func (r *TargetRegistry) Live() []TargetInfo {
	live := make([]TargetInfo, 0, len(r.ecs.Targets))
	for _, id := range r.order {
		if info, ok := r.Get(id); ok {
			live = append(live, info)
		}
	}
	return live
}
