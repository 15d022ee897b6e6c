package components

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    "github.com/charmbracelet/x/ansi"
)

// StatusBar manages the bottom status bar.
type StatusBar struct {
    endpoint string
    notice   string
    hints    string
}

// NewStatusBar creates a new status bar.
func NewStatusBar(endpoint string) *StatusBar {
    return &StatusBar{endpoint: endpoint}
}

// SetNotice shows a short note (skipped paths, clipboard result). Empty clears it.
func (s *StatusBar) SetNotice(msg string) {
    s.notice = msg
}

// SetHints updates the key hint text.
func (s *StatusBar) SetHints(h string) {
    s.hints = h
}

// Render renders the status bar.
func (s *StatusBar) Render(width int) string {
    leftText := s.hints
    if leftText == "" {
        leftText = "?: help"
    }
    if s.notice != "" {
        leftText = s.notice + "  |  " + leftText
    }

    leftStyled := lipgloss.NewStyle().Faint(true).Render(leftText)
    right := lipgloss.NewStyle().Faint(true).Render("→ " + s.endpoint)

    // Ensure right part is always visible
    rightW := lipgloss.Width(right)
    if rightW >= width {
        return ansi.Truncate(right, width, "…")
    }

    avail := width - rightW - 1
    leftRendered := leftStyled
    if lipgloss.Width(leftRendered) > avail {
        leftRendered = ansi.Truncate(leftRendered, avail, "…")
    } else if lipgloss.Width(leftRendered) < avail {
        leftRendered = leftRendered + strings.Repeat(" ", avail-lipgloss.Width(leftRendered))
    }

    return leftRendered + " " + right
}
