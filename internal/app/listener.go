// internal/app/listener.go
package app

import (
	"go-turret-shooter/internal/event"

	"github.com/charmbracelet/log"
)

// Stats — счётчики раунда.
type Stats struct {
	Shots int
	Hits  int
}

// StatsListener считает выстрелы и попадания и пишет их в лог.
type StatsListener struct {
	stats  Stats
	logger *log.Logger
}

func NewStatsListener(logger *log.Logger) *StatsListener {
	return &StatsListener{logger: logger}
}

// OnEvent реализует интерфейс event.Listener.
func (l *StatsListener) OnEvent(e event.Event) {
	data := e.Shot
	switch e.Type {
	case event.ShotFired:
		l.stats.Shots++
		l.logger.Debug("shot fired", "target", data.TargetID, "x", data.X, "y", data.Y, "rotation", data.Rotation)
	case event.TargetHit:
		l.stats.Hits++
		l.logger.Debug("target hit", "target", data.TargetID, "remaining", data.Remaining)
	case event.TargetsCleared:
		l.logger.Info("all targets cleared", "shots", l.stats.Shots, "hits", l.stats.Hits, "last", data.TargetID)
	}
}

func (l *StatsListener) Stats() Stats {
	return l.stats
}
