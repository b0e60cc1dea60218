package engine

import (
	"errors"
	"fmt"
)

// Expected, recoverable outcomes are plain sentinel errors checked with
// errors.Is. Kinds that carry data for the caller get their own types.
var (
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrUnauthorized     = errors.New("not authorized")
	ErrNotFound         = errors.New("not found")
	ErrEmptyPool        = errors.New("sub-topic has no questions")
	ErrAlreadyCompleted = errors.New("session already completed")
	ErrNoActiveSession  = errors.New("no active session")
	ErrSessionActive    = errors.New("a session is already active")
)

// LimitError is returned when the daily session limit is reached. It carries
// the limit numbers for UI messaging.
type LimitError struct {
	SessionLimit      int
	SessionsToday     int
	RemainingSessions int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("daily session limit reached (%d of %d)", e.SessionsToday, e.SessionLimit)
}

// ValidationError flags a malformed request, such as a selection whose shape
// does not match the question type.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RemoteError wraps a storage or provider failure on a critical path.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func remote(op string, err error) error {
	return &RemoteError{Op: op, Err: err}
}
