// Package theme holds the light/dark display mode shared by every renderer.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the active visual variant.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"

	// Default is the mode a new session starts in.
	Default = Dark
)

// ErrUnknownMode is returned by Parse for anything other than light or dark.
var ErrUnknownMode = errors.New("unknown theme mode")

// Parse converts a cookie, query or flag value into a Mode.
func Parse(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ParseOrDefault is Parse with invalid input mapped to Default.
func ParseOrDefault(s string) Mode {
	m, err := Parse(s)
	if err != nil {
		return Default
	}
	return m
}

// Toggle returns the opposite mode. Anything that is not Light toggles to Light.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

func (m Mode) IsDark() bool { return m != Light }

func (m Mode) String() string {
	if m == Light {
		return string(Light)
	}
	return string(Dark)
}

// Class is the class set on the page root; Tailwind's dark: variants key off it.
func (m Mode) Class() string { return m.String() }

// ToggleIcon names the icon shown in the toggle control: the sun while dark, the moon while light.
func (m Mode) ToggleIcon() string {
	if m.IsDark() {
		return "sun"
	}
	return "moon"
}

// ToggleIconClass is the color class of the toggle icon.
func (m Mode) ToggleIconClass() string {
	if m.IsDark() {
		return "w-5 h-5 text-yellow-500"
	}
	return "w-5 h-5 text-slate-700"
}
