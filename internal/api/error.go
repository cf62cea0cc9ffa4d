package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
)

// Error is a non-2xx backend response. Title/Detail are filled from the
// problem-details body when the backend sends one.
type Error struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *Error) Error() string {
	msg := e.Title
	if e.Detail != "" {
		if msg != "" {
			msg += ": "
		}
		msg += e.Detail
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
}

// problemDetails is the RFC 7807 shape used by the backend for errors.
type problemDetails struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var pd problemDetails
	if json.Unmarshal(body, &pd) == nil && (pd.Title != "" || pd.Detail != "") {
		apiErr.Title = pd.Title
		apiErr.Detail = pd.Detail
		return apiErr
	}

	// Not problem-details JSON; keep a trimmed slice of the raw body.
	apiErr.Detail = strings.TrimSpace(string(body))
	if len(apiErr.Detail) > 200 {
		apiErr.Detail = apiErr.Detail[:200]
	}
	return apiErr
}
