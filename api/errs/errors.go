package errs

import (
	"errors"
	"net/http"
)

var (
	ErrDatabaseConnection = errors.New("database unavailable")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrInternal           = errors.New("internal server error")
)

var ErrStatusMap = map[error]int{
	ErrDatabaseConnection: http.StatusInternalServerError,
	ErrDatabaseQuery:      http.StatusInternalServerError,
	ErrInternal:           http.StatusInternalServerError,
}

// IsDatabaseError reports whether err came from the database layer.
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection) || errors.Is(err, ErrDatabaseQuery)
}

// StatusFor returns the status and sentinel for err. Unknown errors map to
// ErrInternal so driver details never reach the client.
func StatusFor(err error) (int, error) {
	for knownErr, statusCode := range ErrStatusMap {
		if errors.Is(err, knownErr) {
			return statusCode, knownErr
		}
	}
	return http.StatusInternalServerError, ErrInternal
}
