package submit

import (
	"errors"
	"fmt"
	"strings"
)

// User-facing messages. Transport failures are collapsed to one generic
// string; the cause goes to the log only.
const (
	MsgAllFieldsRequired = "All fields are required"
	MsgSendFailed        = "Error sending files"
	MsgSentFallback      = "Files sent successfully"
)

// Kind tags an Outcome.
type Kind int

const (
	Idle Kind = iota
	Success
	Failure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "idle"
	}
}

// Outcome is the terminal status of one submit attempt.
type Outcome struct {
	Kind    Kind
	Message string
	// Err is set for failures: a *ValidationError or a *TransportError.
	Err error
}

func succeeded(msg string) Outcome { return Outcome{Kind: Success, Message: msg} }

func failed(msg string, err error) Outcome {
	return Outcome{Kind: Failure, Message: msg, Err: err}
}

// IsValidation reports whether the outcome failed the local field guard.
func (o Outcome) IsValidation() bool {
	var v *ValidationError
	return errors.As(o.Err, &v)
}

// IsTransport reports whether the outcome failed after the guard passed.
func (o Outcome) IsTransport() bool {
	var t *TransportError
	return errors.As(o.Err, &t)
}

// ErrBusy is returned when a submit is attempted while another is in flight.
var ErrBusy = errors.New("submit already in progress")

// ValidationError means required input was missing; nothing was sent.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required input: " + strings.Join(e.Missing, ", ")
}

// TransportError wraps anything that went wrong once the request was being
// built or sent: file access, network, status, or response decoding.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
