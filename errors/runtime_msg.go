// errors/runtime_msg.go
package errors

import (
	"errors"
	"fmt"
)

// RuntimeMsgError carries a message meant to be shown to the caller as is.
type RuntimeMsgError struct {
	Msg string
	Err error
}

// WrapRuntimeMsg ties a caller-facing message to the sentinel it stands for,
// so errors.Is keeps working on the result.
func WrapRuntimeMsg(err error, format string, args ...interface{}) *RuntimeMsgError {
	return &RuntimeMsgError{Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *RuntimeMsgError) Error() string {
	return e.Msg
}

func (e *RuntimeMsgError) Unwrap() error {
	return e.Err
}

// AsRuntimeMsg reports whether err carries a caller-facing message.
func AsRuntimeMsg(err error) (*RuntimeMsgError, bool) {
	var msgErr *RuntimeMsgError
	if errors.As(err, &msgErr) {
		return msgErr, true
	}
	return nil, false
}
