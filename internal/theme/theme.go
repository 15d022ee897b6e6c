package theme

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	AccentColor  string `json:"accentColor"`
	SuccessColor string `json:"successColor"`
	ErrorColor   string `json:"errorColor"`
	DividerColor string `json:"dividerColor"`
	// Banner backgrounds
	SuccessBgColor string `json:"successBgColor"`
	ErrorBgColor   string `json:"errorBgColor"`
}

func darkTheme() Theme {
	return Theme{
		AccentColor:    "63",
		SuccessColor:   "34",
		ErrorColor:     "196",
		DividerColor:   "240",
		SuccessBgColor: "22",
		ErrorBgColor:   "52",
	}
}

func lightTheme() Theme {
	return Theme{
		AccentColor:    "27",
		SuccessColor:   "22",
		ErrorColor:     "124",
		DividerColor:   "244",
		SuccessBgColor: "194",
		ErrorBgColor:   "224",
	}
}

// DefaultTheme is the dark theme.
func DefaultTheme() Theme { return darkTheme() }

// GetTheme returns the requested base theme.
func GetTheme(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	default: // "dark" or any other value
		return darkTheme()
	}
}

// Load starts from the named base theme and applies overrides from
// theme.json in dir, if present.
func Load(dir, base string) Theme {
	t := GetTheme(base)
	if dir == "" {
		return t
	}
	b, err := os.ReadFile(filepath.Join(dir, "theme.json"))
	if err != nil {
		return t
	}
	var u Theme
	if err := json.Unmarshal(b, &u); err != nil {
		return t
	}
	// Merge, keeping defaults for empty fields
	if u.AccentColor != "" {
		t.AccentColor = u.AccentColor
	}
	if u.SuccessColor != "" {
		t.SuccessColor = u.SuccessColor
	}
	if u.ErrorColor != "" {
		t.ErrorColor = u.ErrorColor
	}
	if u.DividerColor != "" {
		t.DividerColor = u.DividerColor
	}
	if u.SuccessBgColor != "" {
		t.SuccessBgColor = u.SuccessBgColor
	}
	if u.ErrorBgColor != "" {
		t.ErrorBgColor = u.ErrorBgColor
	}
	return t
}

func (t Theme) AccentText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.AccentColor)).Render(s)
}

func (t Theme) SuccessText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.SuccessColor)).Render(s)
}

func (t Theme) ErrorText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ErrorColor)).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}

// SuccessLine renders a full-width positive banner line.
func (t Theme) SuccessLine(s string, width int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.SuccessColor)).
		Background(lipgloss.Color(t.SuccessBgColor)).
		Width(width).
		Render(s)
}

// ErrorLine renders a full-width negative banner line.
func (t Theme) ErrorLine(s string, width int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.ErrorColor)).
		Background(lipgloss.Color(t.ErrorBgColor)).
		Width(width).
		Render(s)
}

func Faint(s string) string { return lipgloss.NewStyle().Faint(true).Render(s) }

func Bold(s string) string { return lipgloss.NewStyle().Bold(true).Render(s) }
