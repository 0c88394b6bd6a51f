// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	MaxDeltaTime = 0.06
	WindowTitle  = "Turret Shooter"

	TargetCount  = 10
	TurnDuration = 0.2 // секунды, длительность поворота турели

	// Поле целей занимает верхние 70% экрана (в координатах сцены Y вверх)
	FieldOriginYFactor = 0.3
	FieldHeightFactor  = 0.7

	// Турель — по центру, на 20% высоты от нижнего края
	TurretXFactor = 0.5
	TurretYFactor = 0.2
	TurretHeight  = 48.0
	TurretWidth   = 32.0

	TargetRadius = 14.0

	ShootButtonXFactor = 0.8
	ShootButtonYFactor = 0.1
	ShootButtonWidth   = 160
	ShootButtonHeight  = 56
	ShootButtonTitle   = "SHOOT"
	ButtonFontSize     = 30
	HUDFontSize        = 16

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	PopDuration  = 0.25 // секунды, эффект исчезновения цели
	PopMaxRadius = 28.0

	ClearedScreenDelay = 1.0 // пауза перед экраном "все цели сбиты"
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	FieldColor         = color.RGBA{30, 34, 48, 255}
	TargetColor        = color.RGBA{220, 60, 60, 255}
	TargetStrokeColor  = color.RGBA{240, 240, 240, 255}
	TurretColor        = color.RGBA{70, 130, 180, 255}
	TurretStrokeColor  = color.RGBA{240, 240, 240, 255}
	AimLineColor       = color.RGBA{255, 255, 0, 96}
	PopColor           = color.RGBA{255, 215, 0, 200}
	ButtonColor        = color.RGBA{50, 160, 90, 255}
	ButtonPressedColor = color.RGBA{40, 120, 70, 255}
	ButtonTextColor    = color.RGBA{240, 240, 240, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	IdleStateColor     = color.RGBA{70, 180, 90, 220}
	AimingStateColor   = color.RGBA{220, 60, 60, 220}
	ClearedStateColor  = color.RGBA{194, 178, 128, 255}
	PauseOverlayColor  = color.RGBA{0, 0, 0, 128}
)

var StrokeWidth float32 = 2.0
