// internal/state/menu_state.go
package state

import (
	"fmt"

	game "go-turret-shooter/internal/app"
	"go-turret-shooter/internal/config"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — экран после раунда: все цели сбиты, Space начинает новый раунд.
type MenuState struct {
	sm      *StateMachine
	factory RoundFactory
	stats   game.Stats
	logger  *log.Logger
}

func NewMenuState(sm *StateMachine, factory RoundFactory, stats game.Stats, logger *log.Logger) *MenuState {
	return &MenuState{sm: sm, factory: factory, stats: stats, logger: logger}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return m.NewRound()
	}
	return nil
}

// NewRound запускает новый раунд.
func (m *MenuState) NewRound() error {
	gs, err := NewGameState(m.sm, m.factory, m.logger)
	if err != nil {
		return fmt.Errorf("new round: %w", err)
	}
	m.sm.SetState(gs)
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	msg := fmt.Sprintf("All targets down!\nShots: %d  Hits: %d\n\nPress Space to play again", m.stats.Shots, m.stats.Hits)
	ebitenutil.DebugPrintAt(screen, msg, config.ScreenWidth/2-90, config.ScreenHeight/2-30)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
