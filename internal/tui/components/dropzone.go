package components

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    "github.com/interpretive-systems/labsend/internal/theme"
)

// DropZone renders the dashed target that accepts dropped (pasted) paths
// and opens the picker.
func DropZone(t theme.Theme, width int, focused bool) []string {
    border := t.DividerColor
    if focused {
        border = t.AccentColor
    }
    inner := width - 2
    if inner < 10 {
        inner = 10
    }
    body := lipgloss.JoinVertical(lipgloss.Center,
        theme.Faint("Drag and drop files here or press enter to browse"),
        "[ Select Files ]",
    )
    box := lipgloss.NewStyle().
        Border(lipgloss.NormalBorder()).
        BorderForeground(lipgloss.Color(border)).
        Width(inner).
        Align(lipgloss.Center).
        Render(body)
    return strings.Split(box, "\n")
}
