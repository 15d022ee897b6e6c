package selection

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/shlex"
)

// backslashEscapes controls whether a backslash escapes the next rune in
// dropped text. Windows paths use it as a separator, so there it is turned
// into a slash before splitting.
var backslashEscapes = runtime.GOOS != "windows"

// FromPaths stats each path and returns handles for the regular files, in the
// order given. Paths that cannot be used are reported in skipped.
func FromPaths(paths []string) (files []File, skipped []error) {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("stat %s: %w", p, err))
			continue
		}
		if !info.Mode().IsRegular() {
			skipped = append(skipped, fmt.Errorf("%s: not a regular file", p))
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		files = append(files, File{
			Name: info.Name(),
			Path: abs,
			Size: info.Size(),
		})
	}
	return files, skipped
}

// ParseDropped splits text delivered by a terminal drag-and-drop (a bracketed
// paste) into paths. Terminals differ: some quote paths, some escape spaces
// with backslashes, some send file:// URIs one per line.
func ParseDropped(text string) []string {
	if !backslashEscapes {
		text = strings.ReplaceAll(text, `\`, "/")
	}
	words, err := shlex.Split(text)
	if err != nil {
		// Unbalanced quotes: fall back to plain whitespace splitting.
		words = strings.Fields(text)
		for i, w := range words {
			words[i] = strings.Trim(w, `'"`)
		}
	}

	var paths []string
	for _, w := range words {
		if w == "" {
			continue
		}
		p := fromURI(w)
		if !backslashEscapes {
			p = filepath.FromSlash(p)
		}
		paths = append(paths, p)
	}
	return paths
}

func fromURI(s string) string {
	if !strings.HasPrefix(s, "file://") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	p := u.Path
	if runtime.GOOS == "windows" {
		p = strings.TrimPrefix(p, "/")
	}
	return filepath.FromSlash(p)
}
