package models

import (
	"fmt"
	"strings"
)

// User is the identity captured by the login stub.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Theme is the visual theme preference of a session.
type Theme string

// Theme values.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown theme %q", s)
	}
	return t, nil
}

// Valid reports whether t is light or dark.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Snapshot is the read-only view of a session handed to every page.
type Snapshot struct {
	Page           Page   `json:"page"`
	SelectedSymbol string `json:"selected_symbol"`
	Authenticated  bool   `json:"authenticated"`
	Theme          Theme  `json:"theme"`
	EffectiveTheme Theme  `json:"effective_theme"`
	User           User   `json:"user"`
	ShowHeader     bool   `json:"show_header"`
	ShowChat       bool   `json:"show_chat"`
}
