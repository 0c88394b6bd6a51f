package assets

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager разбирает TTF один раз и кэширует начертания по размеру.
type FontManager struct {
	once  sync.Once
	tt    *opentype.Font
	err   error
	faces map[float64]font.Face
}

// NewFontManager создает новый экземпляр FontManager.
func NewFontManager() *FontManager {
	return &FontManager{
		faces: make(map[float64]font.Face),
	}
}

func (m *FontManager) parse() {
	m.tt, m.err = opentype.Parse(goregular.TTF)
	if m.err != nil {
		m.err = fmt.Errorf("failed to parse embedded font: %w", m.err)
	}
}

// Face возвращает начертание заданного кегля.
func (m *FontManager) Face(size float64) (font.Face, error) {
	m.once.Do(m.parse)
	if m.err != nil {
		return nil, m.err
	}
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face (size %g): %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}
