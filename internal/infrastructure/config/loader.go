package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	World   *WorldConfig
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	data, err := fs.ReadFile(l.fsys, "display.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read display.json: %w", err)
	}

	var cfg DisplayConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse display.json: %w", err)
	}

	return &cfg, nil
}

// LoadWorld loads world.yaml without validating it
func (l *Loader) LoadWorld() (*WorldConfig, error) {
	data, err := fs.ReadFile(l.fsys, "world.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read world.yaml: %w", err)
	}

	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse world.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadScript loads a dialogue script from scripts/
func (l *Loader) LoadScript(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path.Join("scripts", path.Clean(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", name, err)
	}
	return data, nil
}

// LoadAll loads display and world configs and validates the world
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	world, err := l.LoadWorld()
	if err != nil {
		return nil, err
	}
	if err := world.Validate(); err != nil {
		return nil, err
	}
	if err := world.ValidateReach(display.Movement.AvatarRadius); err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		World:   world,
	}, nil
}
