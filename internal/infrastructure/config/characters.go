package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// CharacterConfig describes a selectable character
type CharacterConfig struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Accent string `yaml:"accent"`
}

// Character returns the character with the given id
func (w *WorldConfig) Character(id string) (*CharacterConfig, bool) {
	for i := range w.Characters {
		if w.Characters[i].ID == id {
			return &w.Characters[i], true
		}
	}
	return nil, false
}

// ParseColor parses "#rrggbb" or "#rrggbbaa"
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ColorOr parses s, returning fallback when s is empty or invalid
func ColorOr(s string, fallback color.RGBA) color.RGBA {
	if s == "" {
		return fallback
	}
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
