package ats

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const genericFailure = "request to the backend failed"

// TransportError covers network failures and non-2xx responses. The backend
// reports problems as {"detail": "..."}; when present that text becomes the
// user-facing message, otherwise the transport-level error, otherwise a
// generic fallback. Raw errors never reach a view unformatted.
type TransportError struct {
	Status int
	Detail string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend responded %d: %s", e.Status, e.Detail)
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	if e.Status != 0 {
		return fmt.Sprintf("backend responded %d", e.Status)
	}

	return genericFailure
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message is the human-readable form to surface to the user.
func (e *TransportError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	return genericFailure
}

// errorFromResponse builds a TransportError from a non-2xx response,
// extracting the nested detail field when the body carries one.
func errorFromResponse(resp *http.Response) *TransportError {
	te := &TransportError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return te
	}

	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		te.Detail = strings.TrimSpace(payload.Detail)
		if te.Detail == "" {
			te.Detail = strings.TrimSpace(payload.Error)
		}
	}

	return te
}
