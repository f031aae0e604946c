package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned for any non-2xx response. Message carries the
// server's error envelope when it could be decoded, otherwise the raw body.
type StatusError struct {
	Message string
	Code    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
}

func newStatusError(code int, body []byte) *StatusError {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return &StatusError{Code: code, Message: errResp.Error}
		}
		if errResp.Message != "" {
			return &StatusError{Code: code, Message: errResp.Message}
		}
	}
	return &StatusError{Code: code, Message: string(body)}
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized
}
