// cmd/game/main.go
//
// game — мини-игра: турель доворачивает к ближайшей цели и сбивает её по кнопке SHOOT.
//
// Usage:
//
//	game [--config path] [--seed N] [--targets N] [--pprof addr] [--debug]
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	game "go-turret-shooter/internal/app"
	"go-turret-shooter/internal/assets"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/state"
	"go-turret-shooter/internal/utils"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagSeed    int64
	flagTargets int
	flagPprof   string
	flagDebug   bool
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Turret Shooter - aim at the nearest ball and shoot it down",
	Long: `Turret Shooter places a batch of target balls at random and a turret below them.
Press SHOOT (mouse, touch or Space) to turn the turret toward the nearest ball
and knock it out. P pauses the round.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML settings file (default: ./configs/game.yaml if present)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for reproducible target placement (0 = time based)")
	rootCmd.Flags().IntVar(&flagTargets, "targets", 0, "Number of targets per round (overrides the settings file)")
	rootCmd.Flags().StringVar(&flagPprof, "pprof", "", "Address for the pprof HTTP endpoint, e.g. localhost:6060")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed = flagSeed
	}
	if cmd.Flags().Changed("targets") {
		settings.TargetCount = flagTargets
	}
	if flagDebug {
		settings.LogLevel = "debug"
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger := newLogger(settings.LogLevel)

	if flagPprof != "" {
		go func() {
			logger.Warn("pprof server stopped", "err", http.ListenAndServe(flagPprof, nil))
		}()
	}

	fonts := assets.NewFontManager()
	// Один генератор на всю сессию: каждый новый раунд получает новую раскладку.
	rng := utils.NewPRNGService(settings.Seed)
	factory := func() (*game.Game, error) {
		return game.NewGame(settings, game.DefaultLayout(), rng, fonts, logger)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	gs, err := state.NewGameState(sm, factory, logger)
	if err != nil {
		return err
	}
	sm.SetState(gs)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle(config.WindowTitle)
	return ebiten.RunGame(app)
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "turret",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
