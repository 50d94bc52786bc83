package kv

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is one entry of the error list the service returns on a rejected
// request.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// apiResponse is the service's response envelope. Only the error list matters
// here; the result payload of a put is empty.
type apiResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Errors  []APIError      `json:"errors"`
}

// parseAPIErrors extracts the error list from a response body, defaulting to
// an empty list when the body is not the expected envelope.
func parseAPIErrors(body []byte) []APIError {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil
	}
	return resp.Errors
}

// FormatError renders a rejected API response as a human-readable report:
// the HTTP status line followed by one code/message line per error.
func FormatError(status int, errs []APIError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Error: %d %s\n", status, http.StatusText(status))
	for _, e := range errs {
		fmt.Fprintf(&b, "  %d: %s\n", e.Code, e.Message)
	}

	return b.String()
}
