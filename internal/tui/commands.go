package tui

import (
    "context"

    tea "github.com/charmbracelet/bubbletea"
    "github.com/interpretive-systems/labsend/internal/selection"
    "github.com/interpretive-systems/labsend/internal/submit"
)

// statFiles resolves chosen or dropped paths into file handles.
func statFiles(src source, paths []string) tea.Cmd {
    return func() tea.Msg {
        files, skipped := selection.FromPaths(paths)
        return filesMsg{source: src, files: files, skipped: skipped}
    }
}

// runAttempt sends an admitted submit and reports its outcome.
func runAttempt(ctx context.Context, a *submit.Attempt) tea.Cmd {
    return func() tea.Msg {
        out := a.Run(ctx)
        return submitResultMsg{id: a.ID(), outcome: out}
    }
}

// copyMessage writes text to the system clipboard.
func copyMessage(write func(string) error, text string) tea.Cmd {
    return func() tea.Msg {
        return clipboardMsg{err: write(text)}
    }
}
