package api

import (
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondServiceError maps a service error to its HTTP status. Errors without a mapping
// are logged and answered with a generic 500; their text never reaches the client.
func respondServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout not found")
	case errors.Is(err, service.ErrForbidden):
		abortWithError(c, http.StatusForbidden, service.ErrForbidden.Error())
	case errors.Is(err, domain.ErrInvalidTimestamp):
		abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD or an RFC3339 timestamp")
	case errors.Is(err, service.ErrNotToday):
		abortWithError(c, http.StatusBadRequest, service.ErrNotToday.Error())
	case errors.Is(err, service.ErrInvalidWorkout):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidMonth):
		abortWithError(c, http.StatusBadRequest, service.ErrInvalidMonth.Error())
	case errors.Is(err, service.ErrConcurrentModification):
		abortWithError(c, http.StatusConflict, service.ErrConcurrentModification.Error())
	case errors.Is(err, service.ErrReportExportUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, service.ErrReportExportUnavailable.Error())
	default:
		log.Errorf("%s: %s", action, err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred while "+action)
	}
}
