package overlays

import (
    tea "github.com/charmbracelet/bubbletea"
)

// Action represents what the overlay wants the parent to do.
type Action int

const (
    ActionContinue Action = iota // Keep the overlay open
    ActionClose                  // Close without a result
    ActionConfirm                // Close and hand the result to the parent
)

// Overlay is a modal view that takes over key handling while open.
type Overlay interface {
    // Init prepares the overlay for display at the given size.
    Init(width, height int) tea.Cmd

    // HandleKey processes keyboard input.
    // Returns the action to take and any commands.
    HandleKey(msg tea.KeyMsg) (Action, tea.Cmd)

    // Update processes tea messages (for async results).
    Update(msg tea.Msg) tea.Cmd

    // Render returns the overlay lines.
    Render(width int) []string
}
