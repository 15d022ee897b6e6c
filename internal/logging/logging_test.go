package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "labsend.log")
	l, closeFn, err := New(path, "info", nil)
	require.NoError(t, err)
	l.WithField("request_id", "abc").Info("submitting")
	l.Debug("hidden")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "submitting")
	require.Contains(t, string(b), "request_id=abc")
	require.NotContains(t, string(b), "hidden")
}

func TestNew_Fallback(t *testing.T) {
	var buf bytes.Buffer
	l, _, err := New("", "warn", &buf)
	require.NoError(t, err)
	l.Info("quiet")
	l.Warn("loud")
	require.NotContains(t, buf.String(), "quiet")
	require.Contains(t, buf.String(), "loud")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New("", "chatty", nil)
	require.Error(t, err)
}
