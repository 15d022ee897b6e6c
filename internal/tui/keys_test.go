package tui

import (
    "testing"

    tea "github.com/charmbracelet/bubbletea"
    "github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
    return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyHandler_Handle(t *testing.T) {
    h := NewKeyHandler()
    cases := []struct {
        name string
        msg  tea.KeyMsg
        f    focus
        want KeyAction
    }{
        {"ctrl+c on text", tea.KeyMsg{Type: tea.KeyCtrlC}, focusRoll, ActionQuit},
        {"q types into text", runes("q"), focusEmail, ActionEdit},
        {"q quits elsewhere", runes("q"), focusFiles, ActionQuit},
        {"tab is global", tea.KeyMsg{Type: tea.KeyTab}, focusRoll, ActionNextField},
        {"shift+tab is global", tea.KeyMsg{Type: tea.KeyShiftTab}, focusSubmit, ActionPrevField},
        {"ctrl+s submits from text", tea.KeyMsg{Type: tea.KeyCtrlS}, focusEmail, ActionSubmit},
        {"enter advances text", tea.KeyMsg{Type: tea.KeyEnter}, focusRoll, ActionNextField},
        {"up leaves text", tea.KeyMsg{Type: tea.KeyUp}, focusEmail, ActionPrevField},
        {"enter opens picker", tea.KeyMsg{Type: tea.KeyEnter}, focusFiles, ActionOpenPicker},
        {"space opens picker", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, focusFiles, ActionOpenPicker},
        {"x removes", runes("x"), focusFiles, ActionRemoveFile},
        {"j moves down", runes("j"), focusFiles, ActionMoveDown},
        {"G to bottom", runes("G"), focusFiles, ActionGoToBottom},
        {"paste drops on files", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/tmp/a.txt"), Paste: true}, focusFiles, ActionDrop},
        {"paste ignored on button", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/tmp/a.txt"), Paste: true}, focusSubmit, ActionNone},
        {"paste edits text", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("21CS"), Paste: true}, focusRoll, ActionEdit},
        {"enter submits on button", tea.KeyMsg{Type: tea.KeyEnter}, focusSubmit, ActionSubmit},
        {"x does nothing on button", runes("x"), focusSubmit, ActionNone},
        {"y copies", runes("y"), focusSubmit, ActionCopyMessage},
        {"? toggles help", runes("?"), focusFiles, ActionToggleHelp},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            require.Equal(t, tc.want, h.Handle(tc.msg, tc.f))
        })
    }
}

func TestKeyMap_Help(t *testing.T) {
    km := DefaultKeyMap()
    require.Len(t, km.ShortHelp(), 4)
    var n int
    for _, col := range km.FullHelp() {
        n += len(col)
    }
    require.Equal(t, 12, n)
}
