package form

import (
	"net/mail"
	"strings"
)

// FieldKey names one of the text fields collected by the form.
type FieldKey string

const (
	RollNumber   FieldKey = "rollNumber"
	CollegeEmail FieldKey = "collegeEmail"
)

// Keys lists the fields in display order.
var Keys = []FieldKey{RollNumber, CollegeEmail}

// Label returns the human label for a field.
func (k FieldKey) Label() string {
	switch k {
	case RollNumber:
		return "Roll Number"
	case CollegeEmail:
		return "College Email"
	default:
		return string(k)
	}
}

// Placeholder returns the input placeholder for a field.
func (k FieldKey) Placeholder() string {
	switch k {
	case RollNumber:
		return "Enter your roll number"
	case CollegeEmail:
		return "Enter your college email"
	default:
		return ""
	}
}

// Fields holds the text values typed into the form.
type Fields struct {
	rollNumber   string
	collegeEmail string
}

// New returns Fields prefilled with the given values.
func New(rollNumber, collegeEmail string) Fields {
	return Fields{rollNumber: rollNumber, collegeEmail: collegeEmail}
}

// Get returns the current value of a field. Unknown keys read as empty.
func (f Fields) Get(k FieldKey) string {
	switch k {
	case RollNumber:
		return f.rollNumber
	case CollegeEmail:
		return f.collegeEmail
	default:
		return ""
	}
}

// Set stores a value. Unknown keys are ignored.
func (f *Fields) Set(k FieldKey, v string) {
	switch k {
	case RollNumber:
		f.rollNumber = v
	case CollegeEmail:
		f.collegeEmail = v
	}
}

func (f Fields) RollNumber() string   { return f.rollNumber }
func (f Fields) CollegeEmail() string { return f.collegeEmail }

// Missing lists the fields that are still empty, in display order.
func (f Fields) Missing() []FieldKey {
	var out []FieldKey
	for _, k := range Keys {
		if f.Get(k) == "" {
			out = append(out, k)
		}
	}
	return out
}

// Complete reports whether every field has a value.
func (f Fields) Complete() bool {
	return len(f.Missing()) == 0
}

// LooksLikeEmail is an advisory check used for hinting only; it never
// gates a submit.
func LooksLikeEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}
