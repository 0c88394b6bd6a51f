// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsPath — локальный файл настроек, который ищется, если путь не задан.
const DefaultSettingsPath = "configs/game.yaml"

// ErrInvalidSettings возвращается, если настройки не проходят проверку.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings — параметры раунда, которые можно переопределить файлом или флагами.
type Settings struct {
	TargetCount  int     `yaml:"target_count"`
	TurnDuration float64 `yaml:"turn_duration"`
	Seed         int64   `yaml:"seed"`
	WindowScale  float64 `yaml:"window_scale"`
	LogLevel     string  `yaml:"log_level"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		TargetCount:  TargetCount,
		TurnDuration: TurnDuration,
		Seed:         0,
		WindowScale:  1.0,
		LogLevel:     "info",
	}
}

// LoadSettings загружает настройки.
// Порядок поиска: customPath -> ./configs/game.yaml -> значения по умолчанию.
// Поля, отсутствующие в файле, сохраняют значения по умолчанию.
func LoadSettings(customPath string) (Settings, error) {
	cfg := DefaultSettings()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if data, err := os.ReadFile(DefaultSettingsPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultSettings(), fmt.Errorf("failed to parse config %s: %w", DefaultSettingsPath, err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate проверяет диапазоны значений.
func (s Settings) Validate() error {
	if s.TargetCount < 0 {
		return fmt.Errorf("%w: target_count must be >= 0, got %d", ErrInvalidSettings, s.TargetCount)
	}
	if s.TurnDuration <= 0 {
		return fmt.Errorf("%w: turn_duration must be > 0, got %g", ErrInvalidSettings, s.TurnDuration)
	}
	if s.WindowScale <= 0 {
		return fmt.Errorf("%w: window_scale must be > 0, got %g", ErrInvalidSettings, s.WindowScale)
	}
	return nil
}
