package gateway

import (
	"errors"
	"fmt"
)

// RemoteError is a non-2xx answer from the platform backend. Transport
// failures (unreachable host, timeouts) are wrapped plain errors instead, so
// callers can discriminate the two.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend status %d", e.Status)
}

// AsRemote unwraps err into a *RemoteError when the backend answered at all.
func AsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
