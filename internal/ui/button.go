// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"go-turret-shooter/internal/config"
	"go-turret-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
// Нажатие срабатывает при отпускании внутри кнопки, если и нажатие было внутри.
type Button struct {
	Rect          image.Rectangle
	Text          string
	Color         color.RGBA
	PressedColor  color.RGBA
	TextColor     color.RGBA
	LastClickTime time.Time

	face    font.Face
	enabled bool
	pressed bool

	touchID  ebiten.TouchID
	touching bool
	touchPos image.Point
}

// NewButton создает новую кнопку с центром в (cx, cy) в экранных координатах.
func NewButton(cx, cy, width, height int, label string, face font.Face) *Button {
	return &Button{
		Rect:         image.Rect(cx-width/2, cy-height/2, cx+width/2, cy+height/2),
		Text:         label,
		Color:        config.ButtonColor,
		PressedColor: config.ButtonPressedColor,
		TextColor:    config.ButtonTextColor,
		face:         face,
		enabled:      true,
	}
}

func (b *Button) Enabled() bool {
	return b.enabled
}

// SetEnabled включает или выключает кнопку. Выключение сбрасывает незавершённое нажатие.
func (b *Button) SetEnabled(enabled bool) {
	b.enabled = enabled
	if !enabled {
		b.pressed = false
		b.touching = false
	}
}

func (b *Button) Pressed() bool {
	return b.pressed
}

// Contains проверяет, попадает ли точка экрана в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// HandlePress обрабатывает нажатие в точке (x, y).
func (b *Button) HandlePress(x, y int) {
	if b.enabled && b.Contains(x, y) {
		b.pressed = true
	}
}

// HandleRelease обрабатывает отпускание и возвращает true, если кнопка сработала.
func (b *Button) HandleRelease(x, y int) bool {
	if !b.pressed {
		return false
	}
	b.pressed = false
	if !b.enabled || !b.Contains(x, y) {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

// Update читает мышь и касания и возвращает true, если кнопка сработала в этом кадре.
func (b *Button) Update() bool {
	fired := false

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.HandlePress(ebiten.CursorPosition())
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		fired = b.HandleRelease(ebiten.CursorPosition()) || fired
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if b.enabled && b.Contains(x, y) && !b.touching {
			b.touchID = id
			b.touching = true
			b.touchPos = image.Pt(x, y)
			b.HandlePress(x, y)
		}
	}
	if b.touching {
		if inpututil.IsTouchJustReleased(b.touchID) {
			// После отпускания TouchPosition уже не знает касание, берём последнюю позицию
			b.touching = false
			fired = b.HandleRelease(b.touchPos.X, b.touchPos.Y) || fired
		} else {
			x, y := ebiten.TouchPosition(b.touchID)
			b.touchPos = image.Pt(x, y)
		}
	}

	return fired
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.Color
	switch {
	case !b.enabled:
		bg = render.DarkenColor(b.Color)
	case b.pressed:
		bg = b.PressedColor
	}

	// Короткий "отскок" после срабатывания
	elapsed := time.Since(b.LastClickTime).Seconds()
	grow := float32(4 * math.Exp(-elapsed*8))

	x := float32(b.Rect.Min.X) - grow
	y := float32(b.Rect.Min.Y) - grow
	w := float32(b.Rect.Dx()) + 2*grow
	h := float32(b.Rect.Dy()) + 2*grow
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, config.TextLightColor, true)

	if b.face == nil {
		return
	}
	textColor := b.TextColor
	if !b.enabled {
		textColor = render.DarkenColor(b.TextColor)
	}
	bounds := text.BoundString(b.face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2 - bounds.Min.X
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.face, tx, ty, textColor)
}
