package sky

import "fmt"

// ErrorKind categorizes generation failures.
type ErrorKind string

const (
	// KindInvalidClimate marks an unrecognized climate classification.
	KindInvalidClimate ErrorKind = "invalid_climate"
	// KindMissingAsset marks an image or filename lookup that failed.
	KindMissingAsset ErrorKind = "missing_asset"
	// KindInternal marks an inconsistency that valid inputs cannot reach.
	KindInternal ErrorKind = "internal"
)

// Error is the error type returned by scene generation.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can compare against the
// sentinel values below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	// ErrInvalidClimate is matched by every invalid-climate failure.
	ErrInvalidClimate = &Error{Kind: KindInvalidClimate}
	// ErrMissingAsset is matched by every missing-asset failure.
	ErrMissingAsset = &Error{Kind: KindMissingAsset}
	// ErrInternal is matched by internal consistency failures.
	ErrInternal = &Error{Kind: KindInternal}
)

func invalidClimatef(format string, args ...any) error {
	return &Error{Kind: KindInvalidClimate, Message: fmt.Sprintf(format, args...)}
}

func missingAsset(name string, err error) error {
	return &Error{Kind: KindMissingAsset, Message: fmt.Sprintf("asset %q", name), Err: err}
}

func internalf(format string, args ...any) error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}
