package status

import (
	"errors"
)

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// ErrParseFailure is returned for a request line, which doesn't consist of exactly
	// three tokens or whose target isn't an absolute path. There's no 400 class here,
	// such requests are answered with 404.
	ErrParseFailure        = NewError(NotFound, "malformed request line")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")

	ErrShutdown = errors.New("server is shut down")
)

// CodeOf returns the code of the passed HTTPError. Any other error is considered an
// internal one.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}
