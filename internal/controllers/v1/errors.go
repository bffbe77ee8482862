package v1

import (
	"errors"
	"net/http"

	"github.com/teamplan/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errRangeInverted     = errors.New("the 'from' date must not be after the 'until' date")
	errRangeNotSet       = errors.New("the 'from' and 'until' query parameters must be set")
	errPersonIDParameter = errors.New("the person parameter must be set")
	errDateNotSetInQuery = errors.New("the date query parameter must be set")
	errMonthOutOfRange   = errors.New("the month must be between 1 and 12")
	errYearRangeInverted = errors.New("the 'from' year must not be after the 'until' year")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
