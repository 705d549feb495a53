package service

import (
	"alcyxob/fitness-portal/internal/cache"
	"alcyxob/fitness-portal/internal/calendar"
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/metrics"
	"alcyxob/fitness-portal/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidMonth = errors.New("invalid year or month")

// CalendarService answers the calendar and history questions over one owner's workouts.
// Reads are not snapshot consistent with concurrent completion changes.
type CalendarService interface {
	MonthlyCounts(ctx context.Context, ownerID primitive.ObjectID, year int, month time.Month) ([]calendar.DayCount, error)
	// WorkoutsOnDay takes a YYYY-MM-DD (or RFC3339) day.
	WorkoutsOnDay(ctx context.Context, ownerID primitive.ObjectID, isoDate string) ([]domain.Workout, error)
	MonthlyEntries(ctx context.Context, ownerID primitive.ObjectID, year int, month time.Month) ([]calendar.Entry, error)
}

type calendarService struct {
	workoutRepo repository.WorkoutRepository
	monthCounts *cache.MonthCounts
	metrics     *metrics.Manager
}

// NewCalendarService creates a calendar service. monthCounts and metricsManager may be nil.
func NewCalendarService(workoutRepo repository.WorkoutRepository, monthCounts *cache.MonthCounts, metricsManager *metrics.Manager) CalendarService {
	return &calendarService{
		workoutRepo: workoutRepo,
		monthCounts: monthCounts,
		metrics:     metricsManager,
	}
}

func (s *calendarService) MonthlyCounts(ctx context.Context, ownerID primitive.ObjectID, year int, month time.Month) ([]calendar.DayCount, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	counts, gen, ok := s.monthCounts.Get(ownerID, year, month)
	if ok {
		s.countCacheLookup("hit")
		return counts, nil
	}
	if s.monthCounts != nil {
		s.countCacheLookup("miss")
	}

	from, to := domain.MonthRange(year, month)
	workouts, err := s.workoutRepo.ListCompletedBetween(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list completed workouts: %w", err)
	}

	counts = calendar.MonthlyCounts(workouts, year, month)
	s.monthCounts.Set(ownerID, gen, year, month, counts)
	return counts, nil
}

func (s *calendarService) WorkoutsOnDay(ctx context.Context, ownerID primitive.ObjectID, isoDate string) ([]domain.Workout, error) {
	day, err := domain.ParseDay(isoDate)
	if err != nil {
		return nil, err
	}

	workouts, err := s.workoutRepo.ListCompletedBetween(ctx, ownerID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list completed workouts: %w", err)
	}
	return calendar.WorkoutsOn(workouts, day), nil
}

func (s *calendarService) MonthlyEntries(ctx context.Context, ownerID primitive.ObjectID, year int, month time.Month) ([]calendar.Entry, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	from, to := domain.MonthRange(year, month)
	workouts, err := s.workoutRepo.ListCompletedBetween(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list completed workouts: %w", err)
	}
	return calendar.MonthEntries(workouts, year, month), nil
}

func (s *calendarService) countCacheLookup(result string) {
	if s.metrics != nil {
		s.metrics.CounterCalendarCache.WithLabelValues(result).Inc()
	}
}

func validateMonth(year int, month time.Month) error {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return ErrInvalidMonth
	}
	return nil
}
