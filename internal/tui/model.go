package tui

import (
    "context"

    "github.com/atotto/clipboard"
    "github.com/charmbracelet/bubbles/help"
    "github.com/charmbracelet/bubbles/spinner"
    "github.com/charmbracelet/bubbles/textinput"
    "github.com/sirupsen/logrus"

    "github.com/interpretive-systems/labsend/internal/form"
    "github.com/interpretive-systems/labsend/internal/selection"
    "github.com/interpretive-systems/labsend/internal/submit"
    "github.com/interpretive-systems/labsend/internal/theme"
    "github.com/interpretive-systems/labsend/internal/tui/components"
    "github.com/interpretive-systems/labsend/internal/tui/overlays"
)

// focus identifies the area receiving keys.
type focus int

const (
    focusRoll focus = iota
    focusEmail
    focusFiles
    focusSubmit
    focusCount
)

func (f focus) isText() bool { return f == focusRoll || f == focusEmail }

// field returns the form key for a text focus.
func (f focus) field() form.FieldKey {
    if f == focusEmail {
        return form.CollegeEmail
    }
    return form.RollNumber
}

// State holds all application state.
type State struct {
    Ctx context.Context
    Log *logrus.Entry

    // Form
    Fields form.Fields
    Inputs map[form.FieldKey]*textinput.Model
    Focus  focus

    // Submission
    Controller *submit.Controller

    // UI State
    Width    int
    Height   int
    ShowHelp bool

    // Components
    FileList  *components.FileList
    StatusBar *components.StatusBar
    Spinner   spinner.Model
    Help      help.Model

    // Active overlay; nil when the form is shown.
    Picker       *overlays.Picker
    PickerActive bool

    Theme theme.Theme

    // WriteClipboard is swapped out in tests.
    WriteClipboard func(string) error
}

// Options carries what the CLI resolved before the program starts.
type Options struct {
    Controller *submit.Controller
    Theme      theme.Theme
    Log        *logrus.Entry
    // Initial values; files come from command-line arguments.
    Fields form.Fields
    Files  []selection.File
    // PickerDir is where the picker opens; the working directory if empty.
    PickerDir string
}

// NewState creates initial application state.
func NewState(ctx context.Context, opts Options) *State {
    log := opts.Log
    if log == nil {
        log = logrus.NewEntry(logrus.StandardLogger())
    }
    sel := selection.New(opts.Files...)

    inputs := make(map[form.FieldKey]*textinput.Model, len(form.Keys))
    for _, k := range form.Keys {
        ti := textinput.New()
        ti.Placeholder = k.Placeholder()
        ti.Prompt = "> "
        ti.CharLimit = 256
        ti.SetValue(opts.Fields.Get(k))
        inputs[k] = &ti
    }

    sp := spinner.New()
    sp.Spinner = spinner.Dot

    s := &State{
        Ctx:            ctx,
        Log:            log.WithField("component", "tui"),
        Fields:         opts.Fields,
        Inputs:         inputs,
        Focus:          focusRoll,
        Controller:     opts.Controller,
        FileList:       components.NewFileList(sel),
        StatusBar:      components.NewStatusBar(opts.Controller.Endpoint()),
        Spinner:        sp,
        Help:           help.New(),
        Picker:         overlays.NewPicker(opts.PickerDir),
        Theme:          opts.Theme,
        WriteClipboard: clipboard.WriteAll,
    }
    s.applyFocus()
    return s
}

// Selection is the staged file set.
func (s *State) Selection() *selection.Selection {
    return s.FileList.Selection()
}

// applyFocus focuses the text input under the cursor and blurs the rest.
func (s *State) applyFocus() {
    for _, k := range form.Keys {
        if s.Focus.isText() && s.Focus.field() == k {
            s.Inputs[k].Focus()
        } else {
            s.Inputs[k].Blur()
        }
    }
}

// syncField copies a text input's value into the form state.
func (s *State) syncField(k form.FieldKey) {
    s.Fields.Set(k, s.Inputs[k].Value())
}
