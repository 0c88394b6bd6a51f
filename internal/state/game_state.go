// internal/state/game_state.go
package state

import (
	"errors"
	"time"

	game "go-turret-shooter/internal/app"
	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/config"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры: маршрутизирует ввод в координатор и рисует сцену.
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	factory   RoundFactory
	logger    *log.Logger
	clearedAt time.Duration // игровое время, когда раунд завершился
	cleared   bool
}

// RoundFactory создаёт новый раунд (новый экземпляр игры).
type RoundFactory func() (*game.Game, error)

func NewGameState(sm *StateMachine, factory RoundFactory, logger *log.Logger) (*GameState, error) {
	g, err := factory()
	if err != nil {
		return nil, err
	}
	return &GameState{
		sm:      sm,
		game:    g,
		factory: factory,
		logger:  logger,
	}, nil
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	if g.game.ShootButton.Update() || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.trigger()
	}

	if err := g.game.Update(deltaTime); err != nil {
		return err
	}

	if g.game.Phase() == component.PhaseCleared {
		if !g.cleared {
			g.cleared = true
			g.clearedAt = g.gameTime()
		}
		if (g.gameTime() - g.clearedAt).Seconds() >= config.ClearedScreenDelay {
			g.sm.SetState(NewMenuState(g.sm, g.factory, g.game.Stats(), g.logger))
		}
	}
	return nil
}

// trigger — нажатие SHOOT. Нажатия во время поворота игнорируются.
func (g *GameState) trigger() {
	err := g.game.Shoot()
	switch {
	case err == nil:
	case errors.Is(err, game.ErrTriggerDisabled):
		g.logger.Debug("shoot ignored", "phase", g.game.Phase())
	default:
		g.logger.Error("shoot failed", "err", err)
	}
}

func (g *GameState) gameTime() time.Duration {
	return time.Duration(g.game.GetGameTime() * float64(time.Second))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.Draw(screen)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
