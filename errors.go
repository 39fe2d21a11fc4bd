package sqln

import (
	"errors"
	"fmt"
)

/*
Error codes. You probably shouldn't use this directly; instead, use the `Err`
variables with `errors.Is`.
*/
type ErrCode string

const (
	ErrCodeUnknown           ErrCode = ""
	ErrCodeInvalidInput      ErrCode = "InvalidInput"
	ErrCodeFormat            ErrCode = "Format"
	ErrCodeMissingArgument   ErrCode = "MissingArgument"
	ErrCodeUnusedArgument    ErrCode = "UnusedArgument"
	ErrCodeMissingCapability ErrCode = "MissingCapability"
	ErrCodeRender            ErrCode = "Render"
	ErrCodeInternal          ErrCode = "Internal"
)

/*
Use blank error variables to detect error types:

	if errors.Is(err, sqln.ErrMissingArgument) {
		// Handle specific error.
	}

Note that errors returned by this package can't be compared via `==` because
they may include additional details about the circumstances. When compared by
`errors.Is`, they compare `.Cause` and fall back on `.Code`.
*/
var (
	ErrInvalidInput      Err = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
	ErrFormat            Err = Err{Code: ErrCodeFormat, Cause: errors.New(`malformed template`)}
	ErrMissingArgument   Err = Err{Code: ErrCodeMissingArgument, Cause: errors.New(`missing argument`)}
	ErrUnusedArgument    Err = Err{Code: ErrCodeUnusedArgument, Cause: errors.New(`unused argument`)}
	ErrMissingCapability Err = Err{Code: ErrCodeMissingCapability, Cause: errors.New(`missing context capability`)}
	ErrRender            Err = Err{Code: ErrCodeRender, Cause: errors.New(`failed to render`)}
	ErrInternal          Err = Err{Code: ErrCodeInternal, Cause: errors.New(`internal error`)}
)

// Type of errors returned by this package.
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

// Implement `error`.
func (self Err) Error() string {
	if self == (Err{}) {
		return ""
	}
	msg := `[sqln]`
	if self.Code != ErrCodeUnknown {
		msg += fmt.Sprintf(` %s`, self.Code)
	}
	if self.While != "" {
		msg += fmt.Sprintf(` while %v`, self.While)
	}
	if self.Cause != nil {
		msg += `: ` + self.Cause.Error()
	}
	return msg
}

// Implement a hidden interface in "errors".
func (self Err) Is(other error) bool {
	if self.Cause != nil && errors.Is(self.Cause, other) {
		return true
	}
	err, ok := other.(Err)
	return ok && err.Code == self.Code
}

// Implement a hidden interface in "errors".
func (self Err) Unwrap() error {
	return self.Cause
}

func (self Err) while(while string) Err {
	self.While = while
	return self
}

func (self Err) because(cause error) Err {
	self.Cause = cause
	return self
}
