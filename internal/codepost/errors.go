package codepost

import (
	"errors"
	"fmt"
)

// RemoteError is returned whenever the platform answers with a status code
// other than the success status for the verb. It carries the raw response so
// callers can diagnose which operation failed; the engine never interprets
// the status beyond success-or-not.
type RemoteError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsRemoteError reports whether err originated from a non-success API
// response, as opposed to a transport or decoding failure.
func IsRemoteError(err error) bool {
	if err == nil {
		return false
	}

	var target *RemoteError
	return errors.As(err, &target)
}
