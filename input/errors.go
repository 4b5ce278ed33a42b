package input

import (
	"fmt"

	"github.com/pkg/errors"
)

// UsageError reports a misuse of the command line itself (missing URL,
// malformed method, conflicting flags). The caller prints usage for it.
type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func NewUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// ArgumentError is returned when a request item matches none of the
// separator grammars. Arg is the item exactly as the user typed it.
type ArgumentError struct {
	Arg string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid request item: %s", e.Arg)
}

type URLError struct {
	URL string
	Err error
}

func (e *URLError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid URL: %s", e.URL)
	}
	return fmt.Sprintf("invalid URL: %s: %v", e.URL, e.Err)
}

func (e *URLError) Unwrap() error { return e.Err }

// BodyEncodingError is returned when the value of a key:=value item is not
// a JSON literal.
type BodyEncodingError struct {
	Key   string
	Value string
}

func (e *BodyEncodingError) Error() string {
	return fmt.Sprintf("invalid JSON at '%s': %s", e.Key, e.Value)
}
