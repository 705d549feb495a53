package api

import (
	"alcyxob/fitness-portal/internal/service"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CompletionHandler records and undoes the days a workout was performed.
type CompletionHandler struct {
	completionService service.CompletionService
}

func NewCompletionHandler(completionService service.CompletionService) *CompletionHandler {
	return &CompletionHandler{completionService: completionService}
}

// MarkCompletedRequest is optional; without a date the server's current day is used.
type MarkCompletedRequest struct {
	Date string `json:"date" example:"2024-03-05"`
}

type CompletionResponse struct {
	Message string          `json:"message"`
	Changed bool            `json:"changed"`
	Workout WorkoutResponse `json:"workout"`
}

// MarkCompleted godoc
// @Summary Mark a workout as completed on a day
// @Description Idempotent per calendar day. Any day may be marked, past or future.
// @Tags Completions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ObjectID Hex"
// @Param completion body MarkCompletedRequest false "Day to mark, YYYY-MM-DD or RFC3339"
// @Success 200 {object} CompletionResponse
// @Failure 400 {object} gin.H "Invalid date"
// @Failure 403 {object} gin.H "Access denied"
// @Failure 404 {object} gin.H "Workout not found"
// @Failure 409 {object} gin.H "Concurrent modification"
// @Router /workouts/{workoutId}/completions [post]
func (h *CompletionHandler) MarkCompleted(c *gin.Context) {
	userID, workoutID, ok := callerAndWorkoutID(c)
	if !ok {
		return
	}

	var req MarkCompletedRequest
	// An empty body means "today".
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, added, err := h.completionService.MarkCompleted(c.Request.Context(), workoutID, userID, req.Date)
	if err != nil {
		respondServiceError(c, err, "marking the workout as completed")
		return
	}

	message := "Workout marked as completed"
	if !added {
		message = "Workout was already completed on that day"
	}
	c.JSON(http.StatusOK, CompletionResponse{
		Message: message,
		Changed: added,
		Workout: MapWorkoutToResponse(workout),
	})
}

// UnmarkCompleted godoc
// @Summary Undo a completion
// @Description Only the server's current day can be undone. Removing a day that was never marked is not an error.
// @Tags Completions
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ObjectID Hex"
// @Param date query string false "Day to undo, YYYY-MM-DD or RFC3339; defaults to today"
// @Success 200 {object} CompletionResponse
// @Failure 400 {object} gin.H "Invalid date or not today"
// @Failure 403 {object} gin.H "Access denied"
// @Failure 404 {object} gin.H "Workout not found"
// @Failure 409 {object} gin.H "Concurrent modification"
// @Router /workouts/{workoutId}/completions [delete]
func (h *CompletionHandler) UnmarkCompleted(c *gin.Context) {
	userID, workoutID, ok := callerAndWorkoutID(c)
	if !ok {
		return
	}

	workout, removed, err := h.completionService.Unmark(c.Request.Context(), workoutID, userID, c.Query("date"))
	if err != nil {
		respondServiceError(c, err, "removing the completion")
		return
	}

	message := "Completion removed"
	if !removed {
		message = "No completion recorded for that day"
	}
	c.JSON(http.StatusOK, CompletionResponse{
		Message: message,
		Changed: removed,
		Workout: MapWorkoutToResponse(workout),
	})
}
