package store

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed matches every *ParseError.
	ErrMalformed = errors.New("store: malformed data")
	// ErrNotFound matches every *ResolutionError.
	ErrNotFound = errors.New("store: entry not found")
	// ErrInvalidText is returned when serializing a name or field that is
	// not valid UTF-8.
	ErrInvalidText = errors.New("store: text is not valid UTF-8")
)

// IOError reports a failure to read or write the store file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports store text that is not JSON or does not have the
// expected shape.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse store: %s: %v", e.Msg, e.Err)
	}
	return "parse store: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrMalformed }

// ResolutionKind tells apart the two ways an identifier can fail to resolve.
type ResolutionKind int

const (
	NotFoundByName ResolutionKind = iota + 1
	NotFoundByIndex
)

// ResolutionError reports an identifier that names no entry.
type ResolutionError struct {
	ID   string
	Kind ResolutionKind
}

func (e *ResolutionError) Error() string {
	if e.Kind == NotFoundByIndex {
		return "no entry at that index"
	}
	return "no entry by that name or index"
}

func (e *ResolutionError) Is(target error) bool { return target == ErrNotFound }
