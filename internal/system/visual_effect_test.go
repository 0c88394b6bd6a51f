package system

import (
	"testing"

	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/entity"
	"go-turret-shooter/internal/utils"
)

func TestPopEffectExpires(t *testing.T) {
	ecs := entity.NewECS()
	vfx := NewVisualEffectSystem(ecs)
	id := vfx.SpawnPop(utils.V(10, 20))

	vfx.Update(config.PopDuration / 2)
	pop, ok := ecs.PopEffects[id]
	if !ok {
		t.Fatalf("pop effect removed too early")
	}
	if p := PopProgress(pop); p <= 0 || p >= 1 {
		t.Errorf("PopProgress() = %v mid-effect", p)
	}

	vfx.Update(config.PopDuration)
	if _, ok := ecs.PopEffects[id]; ok {
		t.Errorf("pop effect still alive after its duration")
	}
	if _, ok := ecs.Positions[id]; ok {
		t.Errorf("pop effect position not cleaned up")
	}
}
