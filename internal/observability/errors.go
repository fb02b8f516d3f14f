package observability

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/skillbridge/learning-path/internal/ai"
)

const (
	ErrorAuth    = "auth"
	ErrorNetwork = "network"
	ErrorParsing = "parsing"
	ErrorUnknown = "unknown"
)

// ClassifyUpstreamError buckets an inference failure for the stats endpoint.
// Classification never alters the response body; the caller still sees the
// underlying error text.
func ClassifyUpstreamError(err error) string {
	if err == nil {
		return ErrorUnknown
	}
	if errors.Is(err, ai.ErrNoCredential) {
		return ErrorAuth
	}
	var se *ai.StatusError
	if errors.As(err, &se) {
		switch {
		case se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden:
			return ErrorAuth
		case se.Status == http.StatusTooManyRequests:
			return ErrorNetwork
		default:
			return ErrorNetwork
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorNetwork
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "parse") ||
		strings.Contains(msg, "unmarshal") ||
		strings.Contains(msg, "invalid character") {
		return ErrorParsing
	}
	return ErrorNetwork
}
