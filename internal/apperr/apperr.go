// Package apperr defines the failures screens report to the navigator.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a party member or species lookup that came back empty.
var ErrNotFound = errors.New("pokemon not found")

// MissingFilesError is returned when fewer than two saves are present.
type MissingFilesError struct {
	Dir   string
	Ext   string
	Found int
}

func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("need 2 %s files in %s, found %d", e.Ext, e.Dir, e.Found)
}

// FSError wraps a filesystem failure.
type FSError struct {
	Op   string // "read", "write", "list"
	Path string
	Err  error
}

func (e *FSError) Error() string {
	return fmt.Sprintf("fs: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FSError) Unwrap() error { return e.Err }

// SaveError wraps a failure from the save-data library.
type SaveError struct {
	Op   string // "decode", "encode", "trade"
	Name string
	Err  error
}

func (e *SaveError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("save: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("save %s: %s: %v", e.Name, e.Op, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// CustomError carries a free-form message.
type CustomError struct {
	Msg string
}

func (e *CustomError) Error() string { return e.Msg }

func Custom(msg string) error {
	return &CustomError{Msg: msg}
}

func Customf(format string, args ...any) error {
	return &CustomError{Msg: fmt.Sprintf(format, args...)}
}

func NotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

func IsMissingFiles(err error) bool {
	var e *MissingFilesError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsFS(err error) bool {
	var e *FSError
	return errors.As(err, &e)
}

func IsSave(err error) bool {
	var e *SaveError
	return errors.As(err, &e)
}
