// internal/assets/fonts.go
package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — набор начертаний для HUD и меню.
type Fonts struct {
	Small   font.Face
	Regular font.Face
	Large   font.Face
	Title   font.Face
}

// LoadFonts собирает шрифты из встроенных Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	f := &Fonts{}
	for _, fs := range []struct {
		dst  *font.Face
		font *opentype.Font
		size float64
	}{
		{&f.Small, regular, 14},
		{&f.Regular, regular, 20},
		{&f.Large, bold, 32},
		{&f.Title, bold, 56},
	} {
		face, err := newFace(fs.font, fs.size)
		if err != nil {
			return nil, err
		}
		*fs.dst = face
	}
	return f, nil
}

// LoadFontFile reads a TTF/OTF file from disk at the given size.
func LoadFontFile(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return newFace(tt, size)
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
