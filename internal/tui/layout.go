package tui

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    "github.com/charmbracelet/x/ansi"
    "github.com/interpretive-systems/labsend/internal/theme"
)

// maxCardWidth caps the form width on wide terminals.
const maxCardWidth = 72

// Layout manages screen layout calculations.
type Layout struct {
    width  int
    height int
}

// NewLayout creates a new layout manager.
func NewLayout() *Layout {
    return &Layout{}
}

// SetSize updates the layout dimensions.
func (l *Layout) SetSize(width, height int) {
    l.width = width
    l.height = height
}

// Width returns the total width.
func (l *Layout) Width() int {
    return l.width
}

// Height returns the total height.
func (l *Layout) Height() int {
    return l.height
}

// CardWidth returns the width of the form column.
func (l *Layout) CardWidth() int {
    w := l.width - 4
    if w > maxCardWidth {
        w = maxCardWidth
    }
    if w < 20 {
        w = 20
    }
    return w
}

// ContentHeight returns the height available for content.
func (l *Layout) ContentHeight(overlayHeight int) int {
    // top bar + top rule + bottom rule + bottom bar + overlays
    h := l.height - 4 - overlayHeight
    if h < 1 {
        h = 1
    }
    return h
}

// RenderFrame renders the top bar, the centered body, an optional overlay
// and the bottom bar.
func (l *Layout) RenderFrame(
    topLeft, topRight string,
    bodyLines []string,
    overlayLines []string,
    bottomBar string,
    th theme.Theme,
) string {
    var b strings.Builder

    // Row 1: Top bar
    b.WriteString(l.renderTopBar(topLeft, topRight))
    b.WriteByte('\n')

    // Row 2: Horizontal rule
    b.WriteString(th.DividerText(strings.Repeat("─", l.width)))
    b.WriteByte('\n')

    // Row 3: Body, centered
    contentHeight := l.ContentHeight(len(overlayLines))
    cardW := l.CardWidth()
    pad := (l.width - cardW) / 2
    if pad < 0 {
        pad = 0
    }
    leftPad := strings.Repeat(" ", pad)
    for i := 0; i < contentHeight; i++ {
        line := ""
        if i < len(bodyLines) {
            line = leftPad + padToWidth(bodyLines[i], cardW)
        }
        b.WriteString(padToWidth(line, l.width))
        if i < contentHeight-1 {
            b.WriteByte('\n')
        }
    }

    // Optional overlay
    if len(overlayLines) > 0 {
        b.WriteByte('\n')
        for i, line := range overlayLines {
            b.WriteString(padToWidth(line, l.width))
            if i < len(overlayLines)-1 {
                b.WriteByte('\n')
            }
        }
    }

    // Bottom rule and bar
    b.WriteByte('\n')
    b.WriteString(th.DividerText(strings.Repeat("─", l.width)))
    b.WriteByte('\n')
    b.WriteString(bottomBar)

    return b.String()
}

func (l *Layout) renderTopBar(left, right string) string {
    rightW := lipgloss.Width(right)
    if rightW >= l.width {
        return ansi.Truncate(right, l.width, "…")
    }

    avail := l.width - rightW - 1
    if lipgloss.Width(left) > avail {
        left = ansi.Truncate(left, avail, "…")
    } else if lipgloss.Width(left) < avail {
        left = left + strings.Repeat(" ", avail-lipgloss.Width(left))
    }

    return left + " " + right
}

func padToWidth(s string, w int) string {
    width := lipgloss.Width(s)
    if width == w {
        return s
    }
    if width < w {
        return s + strings.Repeat(" ", w-width)
    }
    return ansi.Truncate(s, w, "…")
}
