// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go-turret-shooter/internal/assets"
	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/entity"
	"go-turret-shooter/internal/event"
	"go-turret-shooter/internal/system"
	"go-turret-shooter/internal/types"
	"go-turret-shooter/internal/ui"
	"go-turret-shooter/internal/utils"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ErrTriggerDisabled — выстрел вне фазы Idle. Ввод такие нажатия просто игнорирует.
var ErrTriggerDisabled = errors.New("shoot trigger is disabled")

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	Registry           *system.TargetRegistry
	AimSystem          *system.AimSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	ShootButton        *ui.Button
	Indicator          *ui.StateIndicator
	TurretID           types.EntityID
	Layout             Layout

	settings config.Settings
	logger   *log.Logger
	stats    *StatsListener
	hudFace  font.Face

	phase     component.Phase
	aimTarget *system.TargetInfo // цель текущего поворота, nil в Idle
	err       error              // нарушение инварианта, возвращается из Update
}

// NewGame initializes a new round: turret, shoot button and targets.
// fonts may be nil, then text is not drawn.
func NewGame(settings config.Settings, layout Layout, rng *utils.PRNGService, fonts *assets.FontManager, logger *log.Logger) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	g := &Game{
		ECS:                ecs,
		Registry:           system.NewTargetRegistry(ecs, rng),
		AimSystem:          system.NewAimSystem(ecs, settings.TurnDuration),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		RenderSystem:       system.NewRenderSystem(ecs),
		EventDispatcher:    dispatcher,
		Rng:                rng,
		Indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		Layout:   layout,
		settings: settings,
		logger:   logger,
		stats:    NewStatsListener(logger),
	}

	var buttonFace font.Face
	if fonts != nil {
		var err error
		if buttonFace, err = fonts.Face(config.ButtonFontSize); err != nil {
			return nil, err
		}
		if g.hudFace, err = fonts.Face(config.HUDFontSize); err != nil {
			return nil, err
		}
	}
	g.ShootButton = ui.NewButton(layout.ButtonX, layout.ButtonY, config.ShootButtonWidth, config.ShootButtonHeight, config.ShootButtonTitle, buttonFace)

	dispatcher.Subscribe(g.stats, event.ShotFired, event.TargetHit, event.TargetsCleared)

	g.createTurret()
	if err := g.spawnTargets(); err != nil {
		return nil, err
	}

	if g.Registry.Count() == 0 {
		g.enterCleared()
	} else {
		g.setPhase(component.PhaseIdle)
	}
	logger.Info("round started", "targets", g.Registry.Count(), "seed", rng.Seed())
	return g, nil
}

func (g *Game) createTurret() {
	g.TurretID = g.ECS.NewEntity()
	g.ECS.Positions[g.TurretID] = &component.Position{Vec2: g.Layout.Turret}
	g.ECS.Turrets[g.TurretID] = &component.TurretComponent{
		Facing: g.Layout.TurretFacing,
		Width:  config.TurretWidth,
		Height: config.TurretHeight,
	}
}

func (g *Game) spawnTargets() error {
	if len(g.Layout.Targets) > 0 {
		for _, pos := range g.Layout.Targets {
			g.Registry.Add(pos)
		}
		return nil
	}
	_, err := g.Registry.Spawn(g.settings.TargetCount, g.Layout.FieldWidth, g.Layout.FieldHeight)
	return err
}

// Shoot поворачивает турель к ближайшей живой цели. Работает только в фазе Idle.
// Триггер выключается до окончания поворота.
func (g *Game) Shoot() error {
	if g.phase != component.PhaseIdle {
		return ErrTriggerDisabled
	}

	turretPos := g.TurretPosition()
	target, err := g.Registry.NearestTo(turretPos, g.Layout.Field)
	if err != nil {
		// Пустой реестр в Idle означает рассинхрон фазы и реестра
		g.enterCleared()
		return fmt.Errorf("shoot: %w", err)
	}

	g.ShootButton.SetEnabled(false)
	g.setPhase(component.PhaseAiming)
	g.aimTarget = &target

	direction := target.Position.Sub(turretPos)
	if err := g.AimSystem.TurnToward(g.TurretID, direction, func() { g.onTurnComplete(target) }); err != nil {
		g.aimTarget = nil
		g.ShootButton.SetEnabled(true)
		g.setPhase(component.PhaseIdle)
		return fmt.Errorf("shoot: %w", err)
	}

	g.EventDispatcher.Dispatch(event.ShotFired, g.shotData(target))
	return nil
}

// onTurnComplete вызывается AimSystem, когда турель довернулась до цели.
func (g *Game) onTurnComplete(target system.TargetInfo) {
	g.aimTarget = nil
	if err := g.Registry.Remove(target.ID); err != nil {
		g.err = fmt.Errorf("turn complete: %w", err)
		g.logger.Error("registry out of sync with coordinator", "target", target.ID, "err", err)
		return
	}
	g.VisualEffectSystem.SpawnPop(target.Position)

	shot := g.shotData(target)
	g.EventDispatcher.Dispatch(event.TargetHit, shot)

	if shot.Remaining == 0 {
		g.enterCleared()
		g.EventDispatcher.Dispatch(event.TargetsCleared, shot)
		return
	}
	g.ShootButton.SetEnabled(true)
	g.setPhase(component.PhaseIdle)
}

func (g *Game) shotData(target system.TargetInfo) event.ShotData {
	return event.ShotData{
		TargetID:  target.ID,
		X:         target.Position.X,
		Y:         target.Position.Y,
		Rotation:  g.ECS.Turrets[g.TurretID].Rotation,
		Remaining: g.Registry.Count(),
	}
}

func (g *Game) enterCleared() {
	g.ShootButton.SetEnabled(false)
	g.setPhase(component.PhaseCleared)
}

func (g *Game) setPhase(phase component.Phase) {
	if g.phase != phase {
		g.logger.Debug("phase changed", "from", g.phase, "to", phase)
	}
	g.phase = phase
	g.Indicator.SetPhase(phase)
}

// Update продвигает анимации. Ошибка означает нарушенный инвариант и завершает игровой цикл.
func (g *Game) Update(deltaTime float64) error {
	if g.err != nil {
		return g.err
	}
	g.ECS.GameTime += deltaTime
	g.AimSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	return g.err
}

// Draw рисует сцену, кнопку и HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	var aimAt *utils.Vec2
	if g.aimTarget != nil {
		aimAt = &g.aimTarget.Position
	}
	g.RenderSystem.Draw(screen, g.Layout.Field, g.Layout.FieldWidth, g.Layout.FieldHeight, g.Registry.Live(), aimAt)
	g.ShootButton.Draw(screen)
	g.Indicator.Draw(screen)

	if g.hudFace != nil {
		hud := fmt.Sprintf("Targets: %d   Shots: %d", g.Registry.Count(), g.stats.Stats().Shots)
		text.Draw(screen, hud, g.hudFace, 12, 24, config.TextLightColor)
	}
}

func (g *Game) Phase() component.Phase {
	return g.phase
}

func (g *Game) Remaining() int {
	return g.Registry.Count()
}

func (g *Game) Stats() Stats {
	return g.stats.Stats()
}

func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}

// TurretPosition возвращает позицию турели в координатах сцены.
func (g *Game) TurretPosition() utils.Vec2 {
	return g.ECS.Positions[g.TurretID].Vec2
}

// Turret возвращает компонент турели.
func (g *Game) Turret() *component.TurretComponent {
	return g.ECS.Turrets[g.TurretID]
}
