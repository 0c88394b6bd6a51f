package app

import (
	"errors"
	"io"
	"math"
	"testing"

	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/event"
	"go-turret-shooter/internal/system"
	"go-turret-shooter/internal/types"
	"go-turret-shooter/internal/utils"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// twoTargetLayout: цели в (0,0) и (10,10), турель в (0,1) смотрит вверх, поле без смещения.
func twoTargetLayout() Layout {
	l := DefaultLayout()
	l.Field = utils.Frame{}
	l.Turret = utils.V(0, 1)
	l.TurretFacing = utils.V(0, 1)
	l.Targets = []utils.Vec2{utils.V(0, 0), utils.V(10, 10)}
	return l
}

func newTestGame(t *testing.T, layout Layout) *Game {
	t.Helper()
	g, err := NewGame(config.DefaultSettings(), layout, utils.NewPRNGService(1), nil, quietLogger())
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	return g
}

func TestShootHitsNearestTarget(t *testing.T) {
	g := newTestGame(t, twoTargetLayout())
	live := g.Registry.Live()
	near, far := live[0].ID, live[1].ID

	if err := g.Shoot(); err != nil {
		t.Fatalf("Shoot() error: %v", err)
	}
	if g.Phase() != component.PhaseAiming {
		t.Errorf("Phase() = %v, expected aiming", g.Phase())
	}
	if g.ShootButton.Enabled() {
		t.Errorf("shoot button enabled while aiming")
	}

	if err := g.Update(config.TurnDuration); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if g.Phase() != component.PhaseIdle {
		t.Errorf("Phase() = %v after turn, expected idle", g.Phase())
	}
	if !g.ShootButton.Enabled() {
		t.Errorf("shoot button not re-enabled after turn")
	}
	if _, ok := g.Registry.Get(near); ok {
		t.Errorf("nearest target %d still live", near)
	}
	if _, ok := g.Registry.Get(far); !ok || g.Remaining() != 1 {
		t.Errorf("expected only target %d to remain, %d left", far, g.Remaining())
	}
	if g.Turret().Facing != utils.V(0, -1) {
		t.Errorf("Facing = %v, expected (0, -1)", g.Turret().Facing)
	}
	if stats := g.Stats(); stats.Shots != 1 || stats.Hits != 1 {
		t.Errorf("Stats() = %+v, expected 1 shot and 1 hit", stats)
	}
	if len(g.ECS.PopEffects) != 1 {
		t.Errorf("expected a pop effect for the hit target, got %d", len(g.ECS.PopEffects))
	}
}

func TestShootRotatesClockwiseTowardTarget(t *testing.T) {
	l := DefaultLayout()
	l.Field = utils.Frame{}
	l.Turret = utils.V(0, 0)
	l.TurretFacing = utils.V(0, 1)
	// Первая цель справа от турели, вторая ниже
	l.Targets = []utils.Vec2{utils.V(10, 0), utils.V(0, -50)}
	g := newTestGame(t, l)

	steps := []struct {
		half, full float64
		facing     utils.Vec2
	}{
		{half: 45, full: 90, facing: utils.V(10, 0)},
		{half: 135, full: 180, facing: utils.V(0, -50)},
	}
	for i, step := range steps {
		if err := g.Shoot(); err != nil {
			t.Fatalf("shot %d: Shoot() error: %v", i, err)
		}
		if err := g.Update(config.TurnDuration / 2); err != nil {
			t.Fatalf("shot %d: Update() error: %v", i, err)
		}
		if got := g.Turret().Rotation; math.Abs(got-step.half) > 1e-6 {
			t.Errorf("shot %d: Rotation mid-turn = %v, expected %v", i, got, step.half)
		}
		if err := g.Update(config.TurnDuration); err != nil {
			t.Fatalf("shot %d: Update() error: %v", i, err)
		}
		if got := g.Turret().Rotation; math.Abs(got-step.full) > 1e-6 {
			t.Errorf("shot %d: Rotation = %v, expected %v", i, got, step.full)
		}
		if g.Turret().Facing != step.facing {
			t.Errorf("shot %d: Facing = %v, expected %v", i, g.Turret().Facing, step.facing)
		}
	}
}

type eventRecorder struct {
	got []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.got = append(r.got, e)
}

func TestRoundEventsCarryShotData(t *testing.T) {
	g := newTestGame(t, twoTargetLayout())
	rec := &eventRecorder{}
	g.EventDispatcher.Subscribe(rec, event.ShotFired, event.TargetHit, event.TargetsCleared)

	var hitIDs []types.EntityID
	for g.Phase() != component.PhaseCleared {
		if err := g.Shoot(); err != nil {
			t.Fatalf("Shoot() error: %v", err)
		}
		if err := g.Update(config.TurnDuration); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
	}

	want := []event.EventType{event.ShotFired, event.TargetHit, event.ShotFired, event.TargetHit, event.TargetsCleared}
	if len(rec.got) != len(want) {
		t.Fatalf("got %d events, expected %d", len(rec.got), len(want))
	}
	for i, e := range rec.got {
		if e.Type != want[i] {
			t.Errorf("event %d = %s, expected %s", i, e.Type, want[i])
		}
		if e.Type == event.TargetHit {
			hitIDs = append(hitIDs, e.Shot.TargetID)
		}
	}
	if fired := rec.got[0].Shot; fired.X != 0 || fired.Y != 0 || fired.Remaining != 2 {
		t.Errorf("first ShotFired = %+v, expected target (0, 0) with 2 remaining", fired)
	}
	if hit := rec.got[1].Shot; hit.Remaining != 1 {
		t.Errorf("first TargetHit Remaining = %d, expected 1", hit.Remaining)
	}
	cleared := rec.got[4].Shot
	if cleared.Remaining != 0 || cleared.TargetID != hitIDs[len(hitIDs)-1] {
		t.Errorf("TargetsCleared = %+v, expected the last hit %d with nothing remaining", cleared, hitIDs[len(hitIDs)-1])
	}
}

func TestShootIgnoredWhileAiming(t *testing.T) {
	g := newTestGame(t, twoTargetLayout())
	if err := g.Shoot(); err != nil {
		t.Fatalf("Shoot() error: %v", err)
	}
	if err := g.Shoot(); !errors.Is(err, ErrTriggerDisabled) {
		t.Errorf("second Shoot() error = %v, expected ErrTriggerDisabled", err)
	}
	if err := g.Update(config.TurnDuration / 4); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if err := g.Shoot(); !errors.Is(err, ErrTriggerDisabled) {
		t.Errorf("Shoot() mid-turn error = %v, expected ErrTriggerDisabled", err)
	}
	if g.Remaining() != 2 {
		t.Errorf("Remaining() = %d mid-turn, expected 2", g.Remaining())
	}
	if stats := g.Stats(); stats.Shots != 1 {
		t.Errorf("ignored shots were counted: %+v", stats)
	}
}

func TestClearingAllTargetsDisablesTrigger(t *testing.T) {
	settings := config.DefaultSettings()
	g, err := NewGame(settings, DefaultLayout(), utils.NewPRNGService(11), nil, quietLogger())
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	if g.Remaining() != config.TargetCount {
		t.Fatalf("Remaining() = %d, expected %d", g.Remaining(), config.TargetCount)
	}

	previous := g.Remaining()
	for g.Phase() != component.PhaseCleared {
		if err := g.Shoot(); err != nil {
			t.Fatalf("Shoot() error with %d left: %v", g.Remaining(), err)
		}
		// Несколько кадров, как в реальном цикле
		for i := 0; i < 5; i++ {
			if err := g.Update(config.TurnDuration / 4); err != nil {
				t.Fatalf("Update() error: %v", err)
			}
		}
		if g.Remaining() != previous-1 {
			t.Fatalf("Remaining() = %d, expected %d", g.Remaining(), previous-1)
		}
		previous = g.Remaining()
	}

	if g.Remaining() != 0 {
		t.Errorf("Remaining() = %d in cleared phase", g.Remaining())
	}
	if g.ShootButton.Enabled() {
		t.Errorf("shoot button enabled after all targets cleared")
	}
	if err := g.Shoot(); !errors.Is(err, ErrTriggerDisabled) {
		t.Errorf("Shoot() after clear error = %v, expected ErrTriggerDisabled", err)
	}
	if stats := g.Stats(); stats.Shots != config.TargetCount || stats.Hits != config.TargetCount {
		t.Errorf("Stats() = %+v, expected %d shots and hits", stats, config.TargetCount)
	}
}

func TestNoTargetsStartsCleared(t *testing.T) {
	settings := config.DefaultSettings()
	settings.TargetCount = 0
	g, err := NewGame(settings, DefaultLayout(), utils.NewPRNGService(1), nil, quietLogger())
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	if g.Phase() != component.PhaseCleared {
		t.Errorf("Phase() = %v, expected cleared", g.Phase())
	}
	if err := g.Shoot(); !errors.Is(err, ErrTriggerDisabled) {
		t.Errorf("Shoot() error = %v, expected ErrTriggerDisabled", err)
	}
}

func TestRegistryDesyncFailsLoudly(t *testing.T) {
	g := newTestGame(t, twoTargetLayout())
	if err := g.Shoot(); err != nil {
		t.Fatalf("Shoot() error: %v", err)
	}
	// Кто-то удалил цель в обход координатора
	target, err := g.Registry.NearestTo(g.TurretPosition(), g.Layout.Field)
	if err != nil {
		t.Fatalf("NearestTo() error: %v", err)
	}
	if err := g.Registry.Remove(target.ID); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	err = g.Update(config.TurnDuration)
	if !errors.Is(err, system.ErrUnknownTarget) {
		t.Fatalf("Update() error = %v, expected ErrUnknownTarget", err)
	}
	if err := g.Update(0.016); !errors.Is(err, system.ErrUnknownTarget) {
		t.Errorf("error must persist on following frames, got %v", err)
	}
}

func TestNewGameRejectsInvalidSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.TurnDuration = 0
	if _, err := NewGame(settings, DefaultLayout(), utils.NewPRNGService(1), nil, quietLogger()); !errors.Is(err, config.ErrInvalidSettings) {
		t.Errorf("NewGame() error = %v, expected ErrInvalidSettings", err)
	}
}

func TestDefaultLayoutPlacesTurretBelowField(t *testing.T) {
	l := DefaultLayout()
	if l.Turret.Y >= l.Field.Origin.Y {
		t.Errorf("turret at y=%v is not below the field origin y=%v", l.Turret.Y, l.Field.Origin.Y)
	}
	if l.ButtonY <= 0 || l.ButtonY >= config.ScreenHeight {
		t.Errorf("button y=%d is off screen", l.ButtonY)
	}
}
