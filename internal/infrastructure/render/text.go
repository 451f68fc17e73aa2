// Package render holds drawing helpers shared by the scenes.
package render

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts creates faces of the Go regular font at any size
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]text.Face
}

// NewFonts parses the embedded Go regular font
func NewFonts() (*Fonts, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &Fonts{source: s, faces: make(map[float64]text.Face)}, nil
}

// Face returns the face for size, creating it on first use
func (f *Fonts) Face(size float64) text.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// Source returns the underlying face source
func (f *Fonts) Source() *text.GoTextFaceSource {
	return f.source
}

// DrawCentered draws s centered horizontally on x with its top at y
func DrawCentered(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// DrawLines draws lines top-down starting at (x, y)
func DrawLines(dst *ebiten.Image, lines []string, face text.Face, x, y, lineHeight float64, clr color.Color) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, line, face, op)
	}
}

// Wrap breaks s into lines no wider than maxWidth as measured by width.
// A single word wider than maxWidth gets a line of its own.
func Wrap(s string, maxWidth float64, width func(string) float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if width(candidate) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// FaceWidth returns a width function measuring with face
func FaceWidth(face text.Face) func(string) float64 {
	return func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	}
}
