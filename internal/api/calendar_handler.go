package api

import (
	"alcyxob/fitness-portal/internal/calendar"
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/service"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves the per-day views of the caller's completions.
type CalendarHandler struct {
	calendarService service.CalendarService
}

func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

type DayCountResponse struct {
	Day   string `json:"day" example:"2024-03-05"`
	Count int    `json:"count"`
}

type MonthCalendarResponse struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Days  []DayCountResponse `json:"days"`
}

type DayWorkoutsResponse struct {
	Date     string            `json:"date"`
	Workouts []WorkoutResponse `json:"workouts"`
}

// MapDayCountsToResponse converts calendar counts to DTOs
func MapDayCountsToResponse(counts []calendar.DayCount) []DayCountResponse {
	days := make([]DayCountResponse, len(counts))
	for i, dc := range counts {
		days[i] = DayCountResponse{Day: domain.FormatDay(dc.Day), Count: dc.Count}
	}
	return days
}

// MonthCalendar godoc
// @Summary Completion counts per day of a month
// @Description Only days with at least one completion are listed, in ascending order.
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month 1-12"
// @Success 200 {object} MonthCalendarResponse
// @Failure 400 {object} gin.H "Invalid year or month"
// @Router /calendar/months/{year}/{month} [get]
func (h *CalendarHandler) MonthCalendar(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	counts, err := h.calendarService.MonthlyCounts(c.Request.Context(), userID, year, month)
	if err != nil {
		respondServiceError(c, err, "building the calendar")
		return
	}
	c.JSON(http.StatusOK, MonthCalendarResponse{
		Year:  year,
		Month: int(month),
		Days:  MapDayCountsToResponse(counts),
	})
}

// DayWorkouts godoc
// @Summary Workouts completed on a day
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day, YYYY-MM-DD or RFC3339"
// @Success 200 {object} DayWorkoutsResponse
// @Failure 400 {object} gin.H "Invalid date"
// @Router /calendar/days/{date} [get]
func (h *CalendarHandler) DayWorkouts(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	date := c.Param("date")
	workouts, err := h.calendarService.WorkoutsOnDay(c.Request.Context(), userID, date)
	if err != nil {
		respondServiceError(c, err, "loading the day's workouts")
		return
	}
	c.JSON(http.StatusOK, DayWorkoutsResponse{
		Date:     date,
		Workouts: MapWorkoutsToResponse(workouts),
	})
}

// yearMonthParams reads :year and :month. Range checks are left to the service.
func yearMonthParams(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid year in URL path.")
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid month in URL path.")
		return 0, 0, false
	}
	return year, time.Month(month), true
}
