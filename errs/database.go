package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Database & Storage Specific Errors
var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDatabaseError wraps a store failure with the operation and entity it hit.
// The wrapped cause is for server-side logging; the client only ever sees an
// opaque internal error.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "connection refused"),
			strings.Contains(errStr, "connection reset"):
			return &ApiErr{
				StatusCode: http.StatusInternalServerError,
				err:        ErrDatabaseConnection,
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("failed to %s %s: %w", operation, entity, ErrDatabaseQuery),
		Cause:      cause,
	}
}
