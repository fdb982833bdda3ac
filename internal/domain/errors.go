package domain

import "fmt"

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindIllegalState
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindIllegalState:
		return "illegal_state"
	default:
		return "unknown"
	}
}

// Error is a domain rule violation. Two errors match under errors.Is when
// their kinds are equal, so the sentinels below classify any domain error.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrValidation   = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "not found"}
	ErrIllegalState = &Error{Kind: KindIllegalState, Message: "illegal state"}
)

func validationErrorf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func ProductNotFound(id ID) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("Product with id %q not found.", id.String())}
}

func OrderNotFound(id ID) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("Order with id %q not found.", id.String())}
}
