package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillbridge/learning-path/internal/ai"
)

func TestClassifyUpstreamError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ErrorUnknown},
		{"missing credential", fmt.Errorf("generation failed: %w", ai.ErrNoCredential), ErrorAuth},
		{"unauthorized", &ai.StatusError{Status: http.StatusUnauthorized}, ErrorAuth},
		{"forbidden", &ai.StatusError{Status: http.StatusForbidden}, ErrorAuth},
		{"rate limited", &ai.StatusError{Status: http.StatusTooManyRequests}, ErrorNetwork},
		{"server error", &ai.StatusError{Status: http.StatusServiceUnavailable}, ErrorNetwork},
		{"deadline", fmt.Errorf("API request failed: %w", context.DeadlineExceeded), ErrorNetwork},
		{"parse failure", errors.New("failed to parse inference reply: invalid character '<'"), ErrorParsing},
		{"plain network", errors.New("connection refused"), ErrorNetwork},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyUpstreamError(tc.err))
		})
	}
}
