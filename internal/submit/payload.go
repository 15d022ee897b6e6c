package submit

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/interpretive-systems/labsend/internal/form"
	"github.com/interpretive-systems/labsend/internal/selection"
)

// Multipart field names expected by the endpoint.
const (
	FieldRollNumber   = "rollNumber"
	FieldCollegeEmail = "collegeEmail"
	FieldFiles        = "files"
)

// Opener opens a selected file for streaming. os.Open by default.
type Opener func(path string) (io.ReadCloser, error)

func osOpen(path string) (io.ReadCloser, error) { return os.Open(path) }

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodePayload streams the multipart body through a pipe so large files are
// never held in memory. The returned content type carries the boundary.
func encodePayload(fields form.Fields, files []selection.File, open Opener) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeParts(mw, fields, files, open))
	}()
	return pr, mw.FormDataContentType()
}

func writeParts(mw *multipart.Writer, fields form.Fields, files []selection.File, open Opener) error {
	if err := mw.WriteField(FieldRollNumber, fields.RollNumber()); err != nil {
		return fmt.Errorf("write %s: %w", FieldRollNumber, err)
	}
	if err := mw.WriteField(FieldCollegeEmail, fields.CollegeEmail()); err != nil {
		return fmt.Errorf("write %s: %w", FieldCollegeEmail, err)
	}
	for _, f := range files {
		if err := writeFile(mw, f, open); err != nil {
			return err
		}
	}
	return mw.Close()
}

func writeFile(mw *multipart.Writer, f selection.File, open Opener) error {
	rc, err := open(f.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FieldFiles, quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", contentType(f.Name))
	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part %s: %w", f.Name, err)
	}
	if _, err := io.Copy(part, rc); err != nil {
		return fmt.Errorf("copy %s: %w", f.Name, err)
	}
	return nil
}

func contentType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
