// internal/component/game_state.go
package component

// Phase — фаза координатора выстрелов
type Phase int

const (
	PhaseIdle    Phase = iota // ждём нажатия SHOOT
	PhaseAiming               // турель поворачивается, триггер выключен
	PhaseCleared              // все цели сбиты, триггер выключен навсегда
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAiming:
		return "aiming"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}
