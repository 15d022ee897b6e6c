package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LABSEND_ENDPOINT", "")
	t.Setenv("LABSEND_LOG_FILE", "")
	t.Setenv("LABSEND_LOG_LEVEL", "")

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	cfg := filepath.Join(t.TempDir(), "config.json")
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func sendServer(t *testing.T, status int) (*httptest.Server, *[]string) {
	t.Helper()
	var names []string
	r := chi.NewRouter()
	r.Post("/send-email", func(w http.ResponseWriter, req *http.Request) {
		if err := req.ParseMultipartForm(1 << 20); err == nil {
			for _, fh := range req.MultipartForm.File["files"] {
				names = append(names, fh.Filename)
			}
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"message": "Email sent successfully"})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, &names
}

func TestSendCommand_Success(t *testing.T) {
	srv, names := sendServer(t, http.StatusOK)
	dir := t.TempDir()
	a := filepath.Join(dir, "lab1.c")
	require.NoError(t, os.WriteFile(a, []byte("int main(){}"), 0o644))

	out, err := runCLI(t, "send", "--endpoint", srv.URL, "--roll", "21CS042", "--email", "s@college.edu", a)
	require.NoError(t, err)
	require.Contains(t, out, "Email sent successfully (1 file(s), 12 Bytes)")
	require.Equal(t, []string{"lab1.c"}, *names)
}

func TestSendCommand_MissingFields(t *testing.T) {
	srv, names := sendServer(t, http.StatusOK)
	out, err := runCLI(t, "send", "--endpoint", srv.URL, "--roll", "21CS042")
	require.Error(t, err)
	require.Contains(t, out, "All fields are required")
	require.Empty(t, *names)
}

func TestSendCommand_ServerError(t *testing.T) {
	srv, _ := sendServer(t, http.StatusBadGateway)
	dir := t.TempDir()
	a := filepath.Join(dir, "lab1.c")
	require.NoError(t, os.WriteFile(a, []byte("x"), 0o644))

	out, err := runCLI(t, "send", "--endpoint", srv.URL, "--roll", "1", "--email", "s@college.edu", a)
	require.Error(t, err)
	require.Contains(t, out, "Error sending files")
}

func TestSendCommand_BadEndpoint(t *testing.T) {
	_, err := runCLI(t, "send", "--endpoint", "localhost:5000", "--roll", "1", "--email", "e")
	require.Error(t, err)
	require.Contains(t, err.Error(), "scheme")
}
