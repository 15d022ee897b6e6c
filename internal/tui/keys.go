package tui

import (
    "github.com/charmbracelet/bubbles/key"
    tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents an action triggered by a key press.
type KeyAction int

const (
    ActionNone KeyAction = iota
    ActionQuit
    ActionToggleHelp
    ActionNextField
    ActionPrevField
    ActionSubmit
    ActionOpenPicker
    ActionDrop
    ActionRemoveFile
    ActionMoveUp
    ActionMoveDown
    ActionGoToTop
    ActionGoToBottom
    ActionCopyMessage
    // ActionEdit forwards the key to the focused text input.
    ActionEdit
)

// KeyMap lists the bindings shown in help.
type KeyMap struct {
    Quit     key.Binding
    Help     key.Binding
    Next     key.Binding
    Prev     key.Binding
    Submit   key.Binding
    Activate key.Binding
    Remove   key.Binding
    Up       key.Binding
    Down     key.Binding
    Top      key.Binding
    Bottom   key.Binding
    Copy     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
    return KeyMap{
        Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
        Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
        Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
        Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
        Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send files")),
        Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "browse / send")),
        Remove:   key.NewBinding(key.WithKeys("x", "d", "delete", "backspace"), key.WithHelp("x", "remove file")),
        Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
        Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
        Top:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first file")),
        Bottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last file")),
        Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy message")),
    }
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
    return []key.Binding{k.Next, k.Submit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
    return [][]key.Binding{
        {k.Next, k.Prev, k.Submit, k.Activate},
        {k.Up, k.Down, k.Top, k.Bottom, k.Remove},
        {k.Copy, k.Help, k.Quit},
    }
}

// KeyHandler maps key presses to actions for the focused area.
type KeyHandler struct {
    keys KeyMap
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
    return &KeyHandler{keys: DefaultKeyMap()}
}

// Keys returns the key map.
func (k *KeyHandler) Keys() KeyMap {
    return k.keys
}

// Handle processes a key message and returns the action. Text inputs take
// every key except navigation, submit and ctrl+c.
func (k *KeyHandler) Handle(msg tea.KeyMsg, f focus) KeyAction {
    if msg.Type == tea.KeyCtrlC {
        return ActionQuit
    }
    switch {
    case key.Matches(msg, k.keys.Next):
        return ActionNextField
    case key.Matches(msg, k.keys.Prev):
        return ActionPrevField
    case key.Matches(msg, k.keys.Submit):
        return ActionSubmit
    }

    if f.isText() {
        if msg.Type == tea.KeyEnter || msg.Type == tea.KeyDown {
            return ActionNextField
        }
        if msg.Type == tea.KeyUp {
            return ActionPrevField
        }
        return ActionEdit
    }

    if msg.Paste {
        if f == focusFiles {
            return ActionDrop
        }
        return ActionNone
    }

    switch {
    case key.Matches(msg, k.keys.Quit):
        return ActionQuit
    case key.Matches(msg, k.keys.Help):
        return ActionToggleHelp
    case key.Matches(msg, k.keys.Copy):
        return ActionCopyMessage
    }

    switch f {
    case focusFiles:
        switch {
        case key.Matches(msg, k.keys.Activate):
            return ActionOpenPicker
        case key.Matches(msg, k.keys.Remove):
            return ActionRemoveFile
        case key.Matches(msg, k.keys.Up):
            return ActionMoveUp
        case key.Matches(msg, k.keys.Down):
            return ActionMoveDown
        case key.Matches(msg, k.keys.Top):
            return ActionGoToTop
        case key.Matches(msg, k.keys.Bottom):
            return ActionGoToBottom
        }
    case focusSubmit:
        switch {
        case key.Matches(msg, k.keys.Activate):
            return ActionSubmit
        case key.Matches(msg, k.keys.Up):
            return ActionPrevField
        }
    }
    return ActionNone
}
