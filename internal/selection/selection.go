package selection

// File is a handle to a user-chosen file. Content is never read here; the
// payload encoder opens Path when the request body is streamed.
type File struct {
	Name string
	Path string
	Size int64
}

// Selection is the ordered set of files staged for upload. Entries are keyed
// by position, so two files with the same name are distinct.
type Selection struct {
	files []File
}

// New returns a selection holding files.
func New(files ...File) *Selection {
	s := &Selection{}
	s.Replace(files)
	return s
}

// Replace overwrites the current sequence with files, keeping their order.
func (s *Selection) Replace(files []File) {
	s.files = append([]File(nil), files...)
}

// RemoveAt deletes the entry at index i and shifts later entries down.
// Out-of-range indices leave the selection untouched and return false.
func (s *Selection) RemoveAt(i int) bool {
	if i < 0 || i >= len(s.files) {
		return false
	}
	out := make([]File, 0, len(s.files)-1)
	out = append(out, s.files[:i]...)
	out = append(out, s.files[i+1:]...)
	s.files = out
	return true
}

// Files returns a copy of the current sequence.
func (s *Selection) Files() []File {
	return append([]File(nil), s.files...)
}

// At returns the entry at index i.
func (s *Selection) At(i int) (File, bool) {
	if i < 0 || i >= len(s.files) {
		return File{}, false
	}
	return s.files[i], true
}

func (s *Selection) Len() int { return len(s.files) }

func (s *Selection) Empty() bool { return len(s.files) == 0 }

// TotalSize sums the sizes of every selected file.
func (s *Selection) TotalSize() int64 {
	var total int64
	for _, f := range s.files {
		total += f.Size
	}
	return total
}
