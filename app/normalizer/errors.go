package normalizer

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindDateParse ErrorKind = iota + 1
	KindIntegerParse
	KindOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindDateParse:
		return "date_parse"
	case KindIntegerParse:
		return "integer_parse"
	case KindOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

var (
	ErrDateParse    = errors.New("token is not a valid calendar date")
	ErrIntegerParse = errors.New("token is not a valid base-10 integer")
	ErrOutOfRange   = errors.New("instant is outside the supported calendar range")
)

// Error carries the failing token and the underlying parse error, if any.
type Error struct {
	Kind  ErrorKind
	Token string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", e.Kind, e.Token, e.Err)
	}
	return fmt.Sprintf("%s %q", e.Kind, e.Token)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an *Error against the exported kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrDateParse:
		return e.Kind == KindDateParse
	case ErrIntegerParse:
		return e.Kind == KindIntegerParse
	case ErrOutOfRange:
		return e.Kind == KindOutOfRange
	}
	return false
}

// Sentinel returns the response body used in place of a result for err.
func Sentinel(err error) NormalizedTime {
	var value string
	switch {
	case errors.Is(err, ErrDateParse):
		value = SentinelNone
	case errors.Is(err, ErrOutOfRange):
		value = SentinelOutOfRange
	default:
		value = SentinelError
	}
	return NormalizedTime{UTC: value, Unix: value}
}
