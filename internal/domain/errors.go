package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// NotFoundError carries which entity and id was missing. It unwraps to
// ErrNotFound so callers can match with errors.Is.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError signals that a reservation interval collides with an
// existing one on the same room. Unwraps to ErrConflict.
type ConflictError struct {
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %d already reserved between %s and %s",
		e.RoomID, e.CheckIn.Format(time.RFC3339), e.CheckOut.Format(time.RFC3339))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// FieldErrors maps an input field name to the messages for every rule it
// violated, in the order the rules were checked.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// ValidationError carries the full field-error map for a rejected input.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msgs := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(msgs, "; ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
