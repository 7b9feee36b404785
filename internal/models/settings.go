package models

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings are the user-level preferences persisted across restarts.
// Consumers receive an immutable snapshot; changes go through the
// settings manager, never a shared mutable global.
type Settings struct {
	Theme     Theme        `json:"theme" validate:"oneof=light dark"`
	Language  Language     `json:"language" validate:"oneof=fr en"`
	Mode      AnalysisMode `json:"mode" validate:"oneof=strict balanced flexible"`
	BlindMode bool         `json:"blindMode"`
}

// DefaultSettings mirrors the defaults of a fresh workspace.
func DefaultSettings() Settings {
	return Settings{
		Theme:     ThemeLight,
		Language:  LanguageFrench,
		Mode:      ModeStrict,
		BlindMode: false,
	}
}
