package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/labsend/internal/selection"
	"github.com/interpretive-systems/labsend/internal/submit"
	"github.com/interpretive-systems/labsend/internal/theme"
)

func sampleList() *FileList {
	return NewFileList(selection.New(
		selection.File{Name: "a.c", Size: 0},
		selection.File{Name: "b.pdf", Size: 1024},
		selection.File{Name: "c.zip", Size: 2048},
	))
}

func TestFileList_RemoveSelectedClampsCursor(t *testing.T) {
	fl := sampleList()
	require.True(t, fl.GoToBottom())
	require.Equal(t, 2, fl.Selected())

	require.True(t, fl.RemoveSelected())
	require.Equal(t, 1, fl.Selected())
	require.Equal(t, 2, fl.Selection().Len())

	require.True(t, fl.RemoveSelected())
	require.True(t, fl.RemoveSelected())
	require.Equal(t, 0, fl.Selected())
	require.False(t, fl.RemoveSelected())
}

func TestFileList_ReplaceResetsCursor(t *testing.T) {
	fl := sampleList()
	fl.MoveSelection(5)
	require.Equal(t, 2, fl.Selected())
	fl.Replace([]selection.File{{Name: "only.txt"}})
	require.Equal(t, 0, fl.Selected())
	require.Equal(t, 1, fl.Selection().Len())
}

func TestFileList_Render(t *testing.T) {
	fl := sampleList()
	fl.MoveSelection(1)

	header := ansi.Strip(fl.Header(40))
	require.True(t, strings.HasPrefix(header, "Selected files (3)"))
	require.True(t, strings.HasSuffix(header, "Total: 3 KB"))

	lines := fl.Render(2, 40, true)
	plain := make([]string, len(lines))
	for i, l := range lines {
		plain[i] = ansi.Strip(l)
	}
	require.Len(t, plain, 3)
	require.True(t, strings.HasPrefix(plain[0], "  a.c"))
	require.True(t, strings.HasSuffix(plain[0], "0 Bytes"))
	require.True(t, strings.HasPrefix(plain[1], "> b.pdf"))
	require.True(t, strings.HasSuffix(plain[1], "1 KB"))
	require.Equal(t, "  … 1 more", plain[2])

	require.Empty(t, NewFileList(selection.New()).Render(5, 40, true))
	require.Equal(t, "", NewFileList(selection.New()).Header(40))
}

func TestFeedback(t *testing.T) {
	th := theme.DefaultTheme()
	require.Empty(t, Feedback(submit.Outcome{}, th, 30))

	ok := Feedback(submit.Outcome{Kind: submit.Success, Message: "Sent!"}, th, 30)
	require.Len(t, ok, 1)
	require.Contains(t, ansi.Strip(ok[0]), "Sent!")

	bad := Feedback(submit.Outcome{Kind: submit.Failure, Message: submit.MsgSendFailed}, th, 30)
	require.Contains(t, ansi.Strip(bad[0]), "Error sending files")

	long := Feedback(submit.Outcome{Kind: submit.Success, Message: strings.Repeat("word ", 12)}, th, 20)
	require.Greater(t, len(long), 1)
}

func TestStatusBar_Render(t *testing.T) {
	sb := NewStatusBar("http://localhost:5000/send-email")
	out := ansi.Strip(sb.Render(80))
	require.Contains(t, out, "?: help")
	require.True(t, strings.HasSuffix(out, "→ http://localhost:5000/send-email"))

	sb.SetNotice("skipped 1 path")
	require.Contains(t, ansi.Strip(sb.Render(80)), "skipped 1 path")

	require.LessOrEqual(t, len([]rune(ansi.Strip(sb.Render(10)))), 10)
}
