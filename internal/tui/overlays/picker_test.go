package overlays

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func openPicker(t *testing.T, names ...string) (*Picker, string) {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(n), 0o644))
	}
	p := NewPicker(dir)
	cmd := p.Init(80, 40)
	require.NotNil(t, cmd)
	// Deliver the directory listing.
	p.Update(cmd())
	return p, dir
}

func press(p *Picker, msgs ...tea.KeyMsg) Action {
	var a Action
	for _, m := range msgs {
		a, _ = p.HandleKey(m)
	}
	return a
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	save  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestPicker_ChooseSeveralAndConfirm(t *testing.T) {
	p, dir := openPicker(t, "a.txt", "b.txt", "c.txt")
	require.Equal(t, dir, p.Directory())

	require.Equal(t, ActionContinue, press(p, enter))
	require.Equal(t, ActionContinue, press(p, down, down, enter))
	require.Equal(t, ActionConfirm, press(p, save))

	require.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "c.txt"),
	}, p.Chosen())
}

func TestPicker_EnterAgainUnchooses(t *testing.T) {
	p, _ := openPicker(t, "a.txt")
	press(p, enter, enter)
	require.Empty(t, p.Chosen())
}

func TestPicker_ConfirmNeedsAFile(t *testing.T) {
	p, _ := openPicker(t, "a.txt")
	require.Equal(t, ActionContinue, press(p, save))
	require.Contains(t, ansi.Strip(strings.Join(p.Render(80), "\n")), "choose at least one file")
}

func TestPicker_Cancel(t *testing.T) {
	p, _ := openPicker(t, "a.txt")
	press(p, enter)
	require.Equal(t, ActionClose, press(p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}))
}

func TestPicker_RenderListsChosen(t *testing.T) {
	p, dir := openPicker(t, "lab1.c", "lab2.c")
	press(p, enter)
	out := ansi.Strip(strings.Join(p.Render(80), "\n"))
	require.Contains(t, out, dir)
	require.Contains(t, out, "Chosen (1): lab1.c")
}
