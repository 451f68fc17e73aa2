package entity

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks a fatal error in the static scene, floor or
// destination tables. It is detected at startup and never defaulted.
var ErrConfiguration = errors.New("configuration error")

// ConfigError describes which table entry is incomplete or invalid
type ConfigError struct {
	Path   string // e.g. "scenes[Game].interactables[projectsBuilding].destination"
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Path, e.Reason)
}

// Unwrap lets errors.Is match ErrConfiguration
func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

// NewConfigError builds a ConfigError with a formatted reason
func NewConfigError(path, format string, args ...any) error {
	return &ConfigError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
