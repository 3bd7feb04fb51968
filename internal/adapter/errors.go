package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNoNetwork marks a connectivity failure: no network path to the
	// remote vault service. Callers surface it as a distinct offline state.
	ErrNoNetwork = errors.New("vault service unreachable")

	// ErrUnauthorized marks a rejected or expired bearer token.
	ErrUnauthorized = errors.New("client unauthorized")
)

// InvalidError is a server-side validation rejection, e.g. an update
// conflict. Message carries the server-supplied explanation when present.
type InvalidError struct {
	Message string
}

func (e *InvalidError) Error() string {
	if e.Message == "" {
		return "request rejected by server"
	}
	return fmt.Sprintf("request rejected by server: %s", e.Message)
}
