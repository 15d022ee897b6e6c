package components

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "github.com/charmbracelet/x/ansi"
    "github.com/interpretive-systems/labsend/internal/selection"
    "github.com/interpretive-systems/labsend/internal/theme"
)

// FileList renders the staged selection and tracks a cursor over it.
type FileList struct {
    sel      *selection.Selection
    selected int
    offset   int
}

// NewFileList creates a file list over sel.
func NewFileList(sel *selection.Selection) *FileList {
    return &FileList{sel: sel}
}

// Selection returns the underlying selection.
func (f *FileList) Selection() *selection.Selection {
    return f.sel
}

// Replace swaps in a new batch and resets the cursor.
func (f *FileList) Replace(files []selection.File) {
    f.sel.Replace(files)
    f.selected = 0
    f.offset = 0
}

// Selected returns the cursor index.
func (f *FileList) Selected() int {
    return f.selected
}

// RemoveSelected removes the entry under the cursor.
func (f *FileList) RemoveSelected() bool {
    if !f.sel.RemoveAt(f.selected) {
        return false
    }
    f.clamp()
    return true
}

// MoveSelection moves the cursor by delta.
func (f *FileList) MoveSelection(delta int) bool {
    n := f.sel.Len()
    if n == 0 {
        return false
    }

    newSel := f.selected + delta
    if newSel < 0 {
        newSel = 0
    }
    if newSel >= n {
        newSel = n - 1
    }

    changed := newSel != f.selected
    f.selected = newSel
    return changed
}

// GoToTop moves the cursor to the first file.
func (f *FileList) GoToTop() bool {
    if f.sel.Len() == 0 || f.selected == 0 {
        return false
    }
    f.selected = 0
    return true
}

// GoToBottom moves the cursor to the last file.
func (f *FileList) GoToBottom() bool {
    n := f.sel.Len()
    if n == 0 || f.selected == n-1 {
        return false
    }
    f.selected = n - 1
    return true
}

func (f *FileList) clamp() {
    n := f.sel.Len()
    if f.selected >= n {
        f.selected = n - 1
    }
    if f.selected < 0 {
        f.selected = 0
    }
}

// EnsureVisible ensures the cursor row is inside the visible window.
func (f *FileList) EnsureVisible(visibleCount int) {
    n := f.sel.Len()
    if n == 0 || visibleCount <= 0 {
        f.offset = 0
        return
    }

    maxStart := n - visibleCount
    if maxStart < 0 {
        maxStart = 0
    }
    if f.offset > maxStart {
        f.offset = maxStart
    }
    if f.offset < 0 {
        f.offset = 0
    }

    if f.selected < f.offset {
        f.offset = f.selected
    } else if f.selected >= f.offset+visibleCount {
        f.offset = f.selected - visibleCount + 1
    }
}

// Header returns the "Selected files (N)   Total: X" line, or "" when empty.
func (f *FileList) Header(width int) string {
    n := f.sel.Len()
    if n == 0 {
        return ""
    }
    left := theme.Bold(fmt.Sprintf("Selected files (%d)", n))
    right := theme.Faint("Total: " + selection.FormatSize(f.sel.TotalSize()))
    gap := width - lipgloss.Width(left) - lipgloss.Width(right)
    if gap < 1 {
        gap = 1
    }
    return left + spaces(gap) + right
}

// Render renders at most height rows, each "name ... size". The cursor
// marker is shown only while focused.
func (f *FileList) Render(height, width int, focused bool) []string {
    n := f.sel.Len()
    if n == 0 || height <= 0 {
        return nil
    }
    f.clamp()
    f.EnsureVisible(height)

    end := f.offset + height
    if end > n {
        end = n
    }
    lines := make([]string, 0, end-f.offset+1)
    for i := f.offset; i < end; i++ {
        file, _ := f.sel.At(i)
        marker := "  "
        if focused && i == f.selected {
            marker = "> "
        }
        size := theme.Faint(selection.FormatSize(file.Size))
        nameW := width - len(marker) - lipgloss.Width(size) - 1
        if nameW < 4 {
            nameW = 4
        }
        name := ansi.Truncate(file.Name, nameW, "…")
        gap := width - len(marker) - lipgloss.Width(name) - lipgloss.Width(size)
        if gap < 1 {
            gap = 1
        }
        lines = append(lines, marker+name+spaces(gap)+size)
    }
    if hidden := n - (end - f.offset); hidden > 0 {
        lines = append(lines, theme.Faint(fmt.Sprintf("  … %d more", hidden)))
    }
    return lines
}

func spaces(n int) string {
    if n <= 0 {
        return ""
    }
    return strings.Repeat(" ", n)
}
