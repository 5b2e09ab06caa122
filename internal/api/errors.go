package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable wraps transport failures: DNS, refused connections,
	// timeouts and cancelled requests.
	ErrUnavailable = errors.New("marketplace api unavailable")

	// ErrMalformedResponse is returned when a response body is not the JSON
	// shape the operation expects.
	ErrMalformedResponse = errors.New("malformed marketplace api response")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: marketplace api returned %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == code
	}
	return false
}
