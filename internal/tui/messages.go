package tui

import (
    "github.com/interpretive-systems/labsend/internal/selection"
    "github.com/interpretive-systems/labsend/internal/submit"
)

// source says which input channel produced a batch of files.
type source string

const (
    sourcePicker source = "picker"
    sourceDrop   source = "drop"
)

// filesMsg carries a statted batch from the picker or a drop.
type filesMsg struct {
    source  source
    files   []selection.File
    skipped []error
}

// submitResultMsg is sent when an in-flight attempt resolves.
type submitResultMsg struct {
    id      string
    outcome submit.Outcome
}

// clipboardMsg reports a copy to the clipboard.
type clipboardMsg struct {
    err error
}
