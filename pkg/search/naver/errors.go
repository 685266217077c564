package naver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownSearchType  = errors.New("unknown search type")
	ErrMissingCredentials = errors.New("missing naver client id or client secret")
	ErrInvalidParameter   = errors.New("invalid parameter")
)

// StatusError is returned when the search API answers with a non 2xx status.
type StatusError struct {
	StatusCode int
	Status     string

	// Code and Message are extracted from the API error payload when present.
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("unexpected response http status %d", e.StatusCode))

	if e.Code != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", e.Code))
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	return sb.String()
}

type apiError struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode"`
}

func newStatusError(res *http.Response) *StatusError {
	statusErr := &StatusError{
		StatusCode: res.StatusCode,
		Status:     res.Status,
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 64e+3))
	if err != nil || len(body) == 0 {
		return statusErr
	}

	var payload apiError
	if err := json.Unmarshal(body, &payload); err != nil {
		statusErr.Message = strings.TrimSpace(string(body))
		return statusErr
	}

	statusErr.Code = payload.ErrorCode
	statusErr.Message = payload.ErrorMessage

	return statusErr
}

// IsRetryable reports whether the error is a transient failure: a transport
// error, a rate limit or a server side error. Configuration and
// authentication errors are never retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrUnknownSearchType) || errors.Is(err, ErrMissingCredentials) || errors.Is(err, ErrInvalidParameter) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= http.StatusInternalServerError
	}

	return true
}
