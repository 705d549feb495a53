package api

import (
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler serves workout CRUD for the authenticated owner.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// WorkoutRequest is the body of create and update. Field rules are enforced by the
// service so that every violation is reported at once.
type WorkoutRequest struct {
	Title     string            `json:"title"`
	Category  string            `json:"category"`
	Notes     string            `json:"notes"`
	Exercises []domain.Exercise `json:"exercises"`
}

func (r WorkoutRequest) toInput() service.WorkoutInput {
	return service.WorkoutInput{
		Title:     r.Title,
		Category:  r.Category,
		Notes:     r.Notes,
		Exercises: r.Exercises,
	}
}

// WorkoutResponse renders days as YYYY-MM-DD.
type WorkoutResponse struct {
	ID            string            `json:"id"`
	OwnerID       string            `json:"ownerId"`
	Title         string            `json:"title"`
	Category      string            `json:"category,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Exercises     []domain.Exercise `json:"exercises"`
	TotalDuration int               `json:"totalDuration"`
	LoggedDate    string            `json:"loggedDate"`
	Completions   []string          `json:"completions"`
	Completed     bool              `json:"completed"`
	CompletedAt   *string           `json:"completedAt"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// MapWorkoutToResponse converts domain.Workout to DTO
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	resp := WorkoutResponse{
		ID:            w.ID.Hex(),
		OwnerID:       w.OwnerID.Hex(),
		Title:         w.Title,
		Category:      w.Category,
		Notes:         w.Notes,
		Exercises:     w.Exercises,
		TotalDuration: w.TotalDuration,
		LoggedDate:    domain.FormatDay(w.LoggedDate),
		Completions:   make([]string, 0, len(w.Completions)),
		Completed:     w.Completed,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
	if resp.Exercises == nil {
		resp.Exercises = []domain.Exercise{}
	}
	for _, c := range w.Completions {
		resp.Completions = append(resp.Completions, domain.FormatDay(c))
	}
	if w.CompletedAt != nil {
		at := domain.FormatDay(*w.CompletedAt)
		resp.CompletedAt = &at
	}
	return resp
}

// MapWorkoutsToResponse converts a slice of domain.Workout
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateWorkout godoc
// @Summary Create a workout
// @Description Creates a workout owned by the caller. totalDuration is derived from the exercises.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body WorkoutRequest true "Workout details"
// @Success 201 {object} WorkoutResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), userID, req.toInput())
	if err != nil {
		respondServiceError(c, err, "creating the workout")
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}

// ListWorkouts godoc
// @Summary List the caller's workouts
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WorkoutResponse
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "listing workouts")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// GetWorkout godoc
// @Summary Get one of the caller's workouts
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ObjectID Hex"
// @Success 200 {object} WorkoutResponse
// @Failure 403 {object} gin.H "Access denied"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{workoutId} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, workoutID, ok := callerAndWorkoutID(c)
	if !ok {
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), workoutID, userID)
	if err != nil {
		respondServiceError(c, err, "loading the workout")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// UpdateWorkout godoc
// @Summary Replace the descriptive fields of a workout
// @Description Completion history is never changed by this endpoint.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ObjectID Hex"
// @Param workout body WorkoutRequest true "Workout details"
// @Success 200 {object} WorkoutResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 403 {object} gin.H "Access denied"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{workoutId} [put]
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, workoutID, ok := callerAndWorkoutID(c)
	if !ok {
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), workoutID, userID, req.toInput())
	if err != nil {
		respondServiceError(c, err, "updating the workout")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Tags Workouts
// @Security BearerAuth
// @Param workoutId path string true "Workout ObjectID Hex"
// @Success 204 "Deleted"
// @Failure 403 {object} gin.H "Access denied"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{workoutId} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, workoutID, ok := callerAndWorkoutID(c)
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), workoutID, userID); err != nil {
		respondServiceError(c, err, "deleting the workout")
		return
	}
	c.Status(http.StatusNoContent)
}

// callerAndWorkoutID reads the caller from the token and the workout from the path.
func callerAndWorkoutID(c *gin.Context) (primitive.ObjectID, primitive.ObjectID, bool) {
	userID, ok := callerID(c)
	if !ok {
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("workoutId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format in URL path.")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return userID, workoutID, true
}
