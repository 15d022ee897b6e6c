package submit

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/labsend/internal/form"
	"github.com/interpretive-systems/labsend/internal/selection"
)

func TestEncodePayload_PartOrderAndHeaders(t *testing.T) {
	contents := map[string]string{
		"/x/report.pdf":  "%PDF",
		"/x/main.c":      "int main(){}",
		`/x/we"ird.txt`: "q",
	}
	open := func(p string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(contents[p])), nil
	}
	files := []selection.File{
		{Name: "report.pdf", Path: "/x/report.pdf"},
		{Name: "main.c", Path: "/x/main.c"},
		{Name: `we"ird.txt`, Path: `/x/we"ird.txt`},
	}

	body, ct := encodePayload(form.New("R1", "e@c.edu"), files, open)
	defer body.Close()

	mt, params, err := mime.ParseMediaType(ct)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mt)

	mr := multipart.NewReader(body, params["boundary"])
	type part struct{ name, filename, data string }
	var parts []part
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		b, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, part{p.FormName(), p.FileName(), string(b)})
	}

	require.Equal(t, []part{
		{FieldRollNumber, "", "R1"},
		{FieldCollegeEmail, "", "e@c.edu"},
		{FieldFiles, "report.pdf", "%PDF"},
		{FieldFiles, "main.c", "int main(){}"},
		{FieldFiles, `we"ird.txt`, "q"},
	}, parts)
}

func TestContentType(t *testing.T) {
	require.Equal(t, "application/pdf", contentType("lab.pdf"))
	require.Equal(t, "application/octet-stream", contentType("Makefile"))
}

func TestParseMessage(t *testing.T) {
	msg, err := parseMessage([]byte(`{"message":"Email sent"}`))
	require.NoError(t, err)
	require.Equal(t, "Email sent", msg)

	msg, err = parseMessage([]byte("  "))
	require.NoError(t, err)
	require.Equal(t, MsgSentFallback, msg)

	_, err = parseMessage([]byte(`["message"]`))
	require.Error(t, err)
}
