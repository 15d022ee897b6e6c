package overlays

import (
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "github.com/charmbracelet/bubbles/filepicker"
    "github.com/charmbracelet/bubbles/key"
    tea "github.com/charmbracelet/bubbletea"
    "github.com/charmbracelet/lipgloss"
    "github.com/interpretive-systems/labsend/internal/theme"
)

var (
    pickerConfirm = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "use chosen files"))
    pickerCancel  = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "cancel"))
    pickerClear   = key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear chosen"))
)

var _ Overlay = (*Picker)(nil)

// Picker browses the filesystem and lets the user choose several files. The
// chosen batch replaces the selection only on confirm.
type Picker struct {
    fp     filepicker.Model
    dir    string
    chosen []string
    err    string
}

// NewPicker creates a picker rooted at dir (the working directory if empty).
func NewPicker(dir string) *Picker {
    return &Picker{dir: dir}
}

// Init resets the chosen batch and reads the starting directory.
func (p *Picker) Init(width, height int) tea.Cmd {
    dir := p.dir
    if dir == "" {
        if wd, err := os.Getwd(); err == nil {
            dir = wd
        } else {
            dir = "."
        }
    }
    fp := filepicker.New()
    fp.CurrentDirectory = dir
    fp.FileAllowed = true
    fp.DirAllowed = false
    fp.ShowSize = true
    fp.ShowPermissions = false
    fp.AutoHeight = true
    // Leave room for the title, the chosen list and the hint line.
    h := height - 8
    if h < 10 {
        h = 10
    }
    fp, _ = fp.Update(tea.WindowSizeMsg{Width: width, Height: h})
    p.fp = fp
    p.chosen = nil
    p.err = ""
    return p.fp.Init()
}

// HandleKey processes keyboard input.
func (p *Picker) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
    switch {
    case key.Matches(msg, pickerConfirm):
        if len(p.chosen) == 0 {
            p.err = "choose at least one file (enter)"
            return ActionContinue, nil
        }
        return ActionConfirm, nil
    case key.Matches(msg, pickerCancel):
        return ActionClose, nil
    case key.Matches(msg, pickerClear):
        p.chosen = nil
        return ActionContinue, nil
    }

    var cmd tea.Cmd
    p.fp, cmd = p.fp.Update(msg)
    if ok, path := p.fp.DidSelectFile(msg); ok {
        p.toggle(path)
        p.err = ""
    }
    if ok, path := p.fp.DidSelectDisabledFile(msg); ok {
        p.err = fmt.Sprintf("%s cannot be chosen", filepath.Base(path))
    }
    return ActionContinue, cmd
}

// Update processes non-key messages such as directory reads.
func (p *Picker) Update(msg tea.Msg) tea.Cmd {
    var cmd tea.Cmd
    p.fp, cmd = p.fp.Update(msg)
    return cmd
}

// Chosen returns the chosen paths in the order they were picked.
func (p *Picker) Chosen() []string {
    return append([]string(nil), p.chosen...)
}

// Directory returns the directory currently shown.
func (p *Picker) Directory() string {
    return p.fp.CurrentDirectory
}

func (p *Picker) toggle(path string) {
    for i, c := range p.chosen {
        if c == path {
            p.chosen = append(p.chosen[:i], p.chosen[i+1:]...)
            return
        }
    }
    p.chosen = append(p.chosen, path)
}

// Render renders the picker.
func (p *Picker) Render(width int) []string {
    lines := make([]string, 0, 32)
    lines = append(lines, strings.Repeat("─", width))
    title := lipgloss.NewStyle().Bold(true).
        Render("Select Files — enter: choose/unchoose, ctrl+s: use chosen, q: cancel")
    lines = append(lines, title)
    lines = append(lines, theme.Faint(p.fp.CurrentDirectory))
    lines = append(lines, strings.Split(strings.TrimRight(p.fp.View(), "\n"), "\n")...)

    lines = append(lines, "")
    if len(p.chosen) == 0 {
        lines = append(lines, theme.Faint("No files chosen"))
    } else {
        names := make([]string, 0, len(p.chosen))
        for _, c := range p.chosen {
            names = append(names, filepath.Base(c))
        }
        lines = append(lines, fmt.Sprintf("Chosen (%d): %s", len(p.chosen), strings.Join(names, ", ")))
    }
    if p.err != "" {
        lines = append(lines, lipgloss.NewStyle().
            Foreground(lipgloss.Color("196")).
            Render("Error: ")+p.err)
    }
    return lines
}
