package instance

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFileNotFound     = errors.New("could not open instance file")
	ErrMalformedHeader  = errors.New("missing header information")
	ErrTruncatedSection = errors.New("unexpected end of section")
)

// LoadError is returned by every Loader operation that fails. Kind is one of
// ErrFileNotFound, ErrMalformedHeader or ErrTruncatedSection, so callers can
// use errors.Is(err, ErrTruncatedSection) and errors.As(err, &loadErr).
type LoadError struct {
	Kind error
	Path string

	// set for ErrTruncatedSection
	Section  string
	Expected int
	Got      int

	// header attributes that were missing or invalid, set for ErrMalformedHeader
	Fields []string

	orig error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case ErrTruncatedSection:
		return fmt.Sprintf("%v %s in %s: expected %d values, got %d", e.Kind, e.Section, e.Path,
			e.Expected, e.Got)
	case ErrMalformedHeader:
		return fmt.Sprintf("%v in %s: %s", e.Kind, e.Path, strings.Join(e.Fields, ", "))
	default:
		if e.orig != nil {
			return fmt.Sprintf("%v %s: %v", e.Kind, e.Path, e.orig)
		}
		return fmt.Sprintf("%v %s", e.Kind, e.Path)
	}
}

func (e *LoadError) Unwrap() error {
	return e.orig
}

func (e *LoadError) Is(target error) bool {
	return target == e.Kind
}

func newFileNotFoundError(path string, orig error) error {
	return &LoadError{
		Kind: ErrFileNotFound,
		Path: path,
		orig: orig,
	}
}

func newMalformedHeaderError(path string, fields []string) error {
	return &LoadError{
		Kind:   ErrMalformedHeader,
		Path:   path,
		Fields: fields,
	}
}

func newTruncatedSectionError(path, section string, expected, got int) error {
	return &LoadError{
		Kind:     ErrTruncatedSection,
		Path:     path,
		Section:  section,
		Expected: expected,
		Got:      got,
	}
}
