package form

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFields_SetGet(t *testing.T) {
	var f Fields
	require.False(t, f.Complete())
	require.Equal(t, []FieldKey{RollNumber, CollegeEmail}, f.Missing())

	f.Set(RollNumber, "21CS042")
	require.Equal(t, "21CS042", f.Get(RollNumber))
	require.Equal(t, "21CS042", f.RollNumber())
	require.Equal(t, []FieldKey{CollegeEmail}, f.Missing())

	f.Set(CollegeEmail, "student@college.edu")
	require.True(t, f.Complete())
	require.Empty(t, f.Missing())

	// unknown keys are ignored
	f.Set(FieldKey("other"), "x")
	require.Equal(t, "", f.Get(FieldKey("other")))
}

func TestFields_WhitespaceIsAValue(t *testing.T) {
	// Only the empty string counts as missing.
	f := New(" ", "a@b.c")
	require.True(t, f.Complete())
}

func TestLooksLikeEmail(t *testing.T) {
	cases := map[string]bool{
		"student@college.edu": true,
		"":                    false,
		"not-an-email":        false,
		"Name <a@b.edu>":      false,
	}
	for in, want := range cases {
		require.Equal(t, want, LooksLikeEmail(in), in)
	}
}
