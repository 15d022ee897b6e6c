package tui

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/spinner"
    "github.com/charmbracelet/bubbles/textinput"
    tea "github.com/charmbracelet/bubbletea"
    "github.com/charmbracelet/lipgloss"
    "github.com/sirupsen/logrus"

    "github.com/interpretive-systems/labsend/internal/form"
    "github.com/interpretive-systems/labsend/internal/selection"
    "github.com/interpretive-systems/labsend/internal/submit"
    "github.com/interpretive-systems/labsend/internal/theme"
    "github.com/interpretive-systems/labsend/internal/tui/components"
    "github.com/interpretive-systems/labsend/internal/tui/overlays"
)

const (
    title    = "Send Lab Work"
    subtitle = "Upload and send your lab assignments"
)

// Program is the Bubble Tea model for the upload form.
type Program struct {
    state      *State
    layout     *Layout
    keyHandler *KeyHandler
}

// New builds the program model.
func New(ctx context.Context, opts Options) Program {
    return Program{
        state:      NewState(ctx, opts),
        layout:     NewLayout(),
        keyHandler: NewKeyHandler(),
    }
}

// Run instantiates and runs the Bubble Tea program until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
    p := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
    if _, err := p.Run(); err != nil {
        return err
    }
    return nil
}

func (p Program) Init() tea.Cmd {
    return textinput.Blink
}

func (p Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
    s := p.state
    switch msg := msg.(type) {
    case tea.WindowSizeMsg:
        s.Width = msg.Width
        s.Height = msg.Height
        s.Help.Width = msg.Width
        p.layout.SetSize(msg.Width, msg.Height)
        if s.PickerActive {
            return p, s.Picker.Update(msg)
        }
        return p, nil

    case tea.KeyMsg:
        if s.PickerActive {
            return p.handlePickerKey(msg)
        }
        return p.handleKey(msg)

    case filesMsg:
        p.applyFiles(msg)
        return p, nil

    case submitResultMsg:
        s.Log.WithFields(logrus.Fields{
            "request_id": msg.id,
            "outcome":    msg.outcome.Kind.String(),
        }).Debug("attempt resolved")
        return p, nil

    case clipboardMsg:
        if msg.err != nil {
            s.Log.WithError(msg.err).Warn("clipboard write failed")
            s.StatusBar.SetNotice("copy failed")
        } else {
            s.StatusBar.SetNotice("copied")
        }
        return p, nil

    case spinner.TickMsg:
        // Let the spinner stop once the attempt resolves.
        if !s.Controller.Busy() {
            return p, nil
        }
        var cmd tea.Cmd
        s.Spinner, cmd = s.Spinner.Update(msg)
        return p, cmd
    }

    if s.PickerActive {
        return p, s.Picker.Update(msg)
    }
    if s.Focus.isText() {
        k := s.Focus.field()
        var cmd tea.Cmd
        *s.Inputs[k], cmd = s.Inputs[k].Update(msg)
        return p, cmd
    }
    return p, nil
}

func (p Program) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
    s := p.state
    if s.ShowHelp && msg.Type == tea.KeyEsc {
        s.ShowHelp = false
        return p, nil
    }

    switch p.keyHandler.Handle(msg, s.Focus) {
    case ActionQuit:
        return p, tea.Quit
    case ActionToggleHelp:
        s.ShowHelp = !s.ShowHelp
    case ActionNextField:
        s.Focus = (s.Focus + 1) % focusCount
        s.applyFocus()
    case ActionPrevField:
        s.Focus = (s.Focus + focusCount - 1) % focusCount
        s.applyFocus()
    case ActionSubmit:
        return p, p.submit()
    case ActionOpenPicker:
        s.PickerActive = true
        s.StatusBar.SetNotice("")
        return p, s.Picker.Init(s.Width, s.Height)
    case ActionDrop:
        paths := selection.ParseDropped(string(msg.Runes))
        if len(paths) == 0 {
            s.StatusBar.SetNotice("nothing to add from drop")
            return p, nil
        }
        return p, statFiles(sourceDrop, paths)
    case ActionRemoveFile:
        if s.Selection().Empty() {
            s.StatusBar.SetNotice("no files to remove")
            return p, nil
        }
        f, _ := s.Selection().At(s.FileList.Selected())
        if s.FileList.RemoveSelected() {
            s.Log.WithField("file", f.Name).Debug("file removed")
            s.StatusBar.SetNotice("removed " + f.Name)
        }
    case ActionMoveUp:
        s.FileList.MoveSelection(-1)
    case ActionMoveDown:
        s.FileList.MoveSelection(1)
    case ActionGoToTop:
        s.FileList.GoToTop()
    case ActionGoToBottom:
        s.FileList.GoToBottom()
    case ActionCopyMessage:
        o := s.Controller.Outcome()
        if o.Kind == submit.Idle {
            s.StatusBar.SetNotice("nothing to copy")
            return p, nil
        }
        return p, copyMessage(s.WriteClipboard, o.Message)
    case ActionEdit:
        k := s.Focus.field()
        var cmd tea.Cmd
        *s.Inputs[k], cmd = s.Inputs[k].Update(msg)
        s.syncField(k)
        return p, cmd
    }
    return p, nil
}

func (p Program) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
    s := p.state
    action, cmd := s.Picker.HandleKey(msg)
    switch action {
    case overlays.ActionClose:
        s.PickerActive = false
        return p, nil
    case overlays.ActionConfirm:
        s.PickerActive = false
        chosen := s.Picker.Chosen()
        s.Log.WithFields(logrus.Fields{
            "dir":   s.Picker.Directory(),
            "files": len(chosen),
        }).Debug("picker confirmed")
        return p, statFiles(sourcePicker, chosen)
    }
    return p, cmd
}

// submit admits a new attempt on the event loop so a second press while one
// is in flight is dropped before any request is built.
func (p Program) submit() tea.Cmd {
    s := p.state
    for _, k := range form.Keys {
        s.syncField(k)
    }
    a, err := s.Controller.Begin(s.Fields, s.Selection().Files())
    if errors.Is(err, submit.ErrBusy) {
        s.Log.Debug("submit ignored: attempt in flight")
        return nil
    }
    if err != nil {
        return nil
    }
    s.StatusBar.SetNotice("")
    return tea.Batch(s.Spinner.Tick, runAttempt(s.Ctx, a))
}

// applyFiles is the single entry point for both input channels: a non-empty
// batch replaces the selection wholesale.
func (p Program) applyFiles(msg filesMsg) {
    s := p.state
    log := s.Log.WithField("source", string(msg.source))
    for _, err := range msg.skipped {
        log.WithError(err).Warn("path skipped")
    }
    if len(msg.files) == 0 {
        s.StatusBar.SetNotice(fmt.Sprintf("no usable files from %s", msg.source))
        return
    }
    s.FileList.Replace(msg.files)
    log.WithField("files", len(msg.files)).Info("selection replaced")
    if n := len(msg.skipped); n > 0 {
        s.StatusBar.SetNotice(fmt.Sprintf("skipped %d path(s)", n))
    } else {
        s.StatusBar.SetNotice("")
    }
}

func (p Program) View() string {
    s := p.state
    if s.Width == 0 || s.Height == 0 {
        return "Loading..."
    }
    s.StatusBar.SetHints(s.Help.ShortHelpView(p.keyHandler.Keys().ShortHelp()))
    bottom := s.StatusBar.Render(s.Width)

    if s.PickerActive {
        return p.layout.RenderFrame(title, subtitle, s.Picker.Render(s.Width), nil, bottom, s.Theme)
    }

    var overlay []string
    if s.ShowHelp {
        overlay = p.helpOverlayLines(s.Width)
    }
    body := p.formLines(p.layout.ContentHeight(len(overlay)))
    return p.layout.RenderFrame(title, subtitle, body, overlay, bottom, s.Theme)
}

// formLines renders the card, giving the file list whatever rows remain.
func (p Program) formLines(height int) []string {
    s := p.state
    w := p.layout.CardWidth()

    var top []string
    for _, k := range form.Keys {
        f := focusRoll
        if k == form.CollegeEmail {
            f = focusEmail
        }
        top = append(top, p.label(k.Label(), s.Focus == f))
        top = append(top, s.Inputs[k].View())
        top = append(top, p.fieldHint(k))
    }
    top = append(top, p.label("Upload Files", s.Focus == focusFiles))
    top = append(top, components.DropZone(s.Theme, w, s.Focus == focusFiles)...)
    if h := s.FileList.Header(w); h != "" {
        top = append(top, h)
    }

    var bottom []string
    if !s.Controller.Busy() {
        if banner := components.Feedback(s.Controller.Outcome(), s.Theme, w); len(banner) > 0 {
            bottom = append(bottom, "")
            bottom = append(bottom, banner...)
        }
    }
    bottom = append(bottom, "", p.submitButton())

    listH := height - len(top) - len(bottom)
    if listH < 1 {
        listH = 1
    }
    lines := append(top, s.FileList.Render(listH, w, s.Focus == focusFiles)...)
    return append(lines, bottom...)
}

func (p Program) label(text string, focused bool) string {
    if focused {
        return p.state.Theme.AccentText(theme.Bold(text))
    }
    return theme.Bold(text)
}

// fieldHint shows advisory notes under a field; it never blocks submit.
func (p Program) fieldHint(k form.FieldKey) string {
    v := p.state.Fields.Get(k)
    if k == form.CollegeEmail && v != "" && !form.LooksLikeEmail(v) {
        return theme.Faint("  doesn't look like an email address")
    }
    return ""
}

func (p Program) submitButton() string {
    s := p.state
    style := lipgloss.NewStyle().Padding(0, 1)
    if s.Controller.Busy() {
        return style.Faint(true).Render("[ " + s.Spinner.View() + " Processing... ]")
    }
    if s.Focus == focusSubmit {
        style = style.Reverse(true).Bold(true)
    }
    return style.Render("[ ➤ Send Files ]")
}

// helpOverlayLines returns the bottom overlay lines (without trailing newline).
func (p Program) helpOverlayLines(width int) []string {
    s := p.state
    header := lipgloss.NewStyle().Bold(true).Render("Help — press '?' or Esc to close")
    lines := []string{strings.Repeat("─", width), header}
    lines = append(lines, strings.Split(s.Help.FullHelpView(p.keyHandler.Keys().FullHelp()), "\n")...)
    lines = append(lines, theme.Faint("Drop files onto the terminal while \"Upload Files\" is focused to replace the selection."))
    return lines
}
