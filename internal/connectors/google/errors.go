package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// Reasons Google reports with a 403 when the caller is throttled rather
// than denied.
var rateLimitReasons = map[string]bool{
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
}

// WrapError converts an error from a Google API call into a
// *domain.TransportError tagged with op. Status codes are classified into
// the domain status sentinels so callers can match with errors.Is.
// Context cancellation is returned as such, not as a transport failure.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	te := &domain.TransportError{Op: op, Err: err}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		te.StatusCode = gerr.Code
		te.Kind = classify(gerr)
	}
	return te
}

func classify(gerr *googleapi.Error) error {
	switch gerr.Code {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		for _, item := range gerr.Errors {
			if rateLimitReasons[item.Reason] {
				return domain.ErrRateLimited
			}
		}
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return nil
	}
}
