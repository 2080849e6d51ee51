// Package viewstate holds the list and detail views as explicit state
// machines: Idle → Loading → {Success, Failed}.
package viewstate

import (
	"errors"
	"fmt"
)

// Status is the phase a view is in.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

var statusNames = [...]string{"idle", "loading", "success", "error"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// IsLoading reports whether a fetch is outstanding.
func (s Status) IsLoading() bool { return s == StatusLoading || s == StatusIdle }

// IsFailed reports whether the view settled on an error.
func (s Status) IsFailed() bool { return s == StatusFailed }

// MarshalText lets Status appear by name in JSON responses.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ValidationError is a bad input caught locally, before any query is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func messageOr(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
