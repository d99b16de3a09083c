package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Thin wrappers around cockroachdb/errors so the rest of the codebase never
// imports it directly.

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

// Mark attaches a sentinel so errors.Is(err, markErr) holds for both the
// standard library and the cockroachdb matchers. The sentinel becomes the
// cause chain; the original error is kept as a secondary for %+v logging.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.WithSecondaryError(cr.WithMessage(markErr, err.Error()), err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
