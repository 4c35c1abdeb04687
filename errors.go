package valueschema

import (
	"errors"
	"strings"
)

// ErrorCode identifies why a value was rejected. Callers map codes to
// localized messages; Params carry the values to interpolate.
type ErrorCode string

// Error codes (stable; exported for IDE completion and type safety).
const (
	CodeInvalidText      ErrorCode = "_invalidText"
	CodeInvalidBoolean   ErrorCode = "_invalidBoolean"
	CodeInvalidNumber    ErrorCode = "_invalidNumber"
	CodeInvalidDate      ErrorCode = "_invalidDate"
	CodeInvalidTimestamp ErrorCode = "_invalidTimestamp"
	CodeMinLength        ErrorCode = "_minLength"
	CodeMaxLength        ErrorCode = "_maxLength"
	CodeMinValue         ErrorCode = "_minValue"
	CodeMaxValue         ErrorCode = "_maxValue"
	CodeEarliestDate     ErrorCode = "_earliestDate"
	CodeLatestDate       ErrorCode = "_latestDate"
)

// Compile errors.
var (
	ErrUnknownValueType = errors.New("valueschema: unknown value type")
	ErrInvalidPattern   = errors.New("valueschema: invalid regex")
)

// Error is a rejected value: a code plus ordered parameters such as the
// violated bound.
type Error struct {
	Code   ErrorCode `json:"code"`
	Params []string  `json:"params,omitempty"`
}

// Error renders the code and params, e.g. "_minLength (4)".
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Params) == 0 {
		return string(e.Code)
	}
	return string(e.Code) + " (" + strings.Join(e.Params, ", ") + ")"
}

// Is matches another *Error with the same code, so errors.Is works against
// code-only targets like &Error{Code: CodeMinValue}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func fail(code ErrorCode, params ...string) Result {
	return Result{Err: &Error{Code: code, Params: params}}
}
