package api

import (
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/service"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCompletionHandler_MarkCompleted(t *testing.T) {
	s := newTestServer(t)
	w := sampleWorkout(s.userID)
	marked := *w
	marked.MarkCompleted(day(2024, 3, 5))
	path := "/api/v1/workouts/" + w.ID.Hex() + "/completions"

	t.Run("without a body marks today", func(t *testing.T) {
		s.completions.EXPECT().MarkCompleted(gomock.Any(), w.ID, s.userID, "").Return(&marked, true, nil)

		rec := s.do(t, http.MethodPost, path, nil, s.token)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[CompletionResponse](t, rec)
		assert.True(t, resp.Changed)
		assert.Equal(t, "Workout marked as completed", resp.Message)
		assert.Equal(t, []string{"2024-03-05"}, resp.Workout.Completions)
		assert.True(t, resp.Workout.Completed)
	})

	t.Run("explicit date", func(t *testing.T) {
		s.completions.EXPECT().MarkCompleted(gomock.Any(), w.ID, s.userID, "2024-03-02").Return(&marked, true, nil)

		rec := s.do(t, http.MethodPost, path, MarkCompletedRequest{Date: "2024-03-02"}, s.token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("day already recorded", func(t *testing.T) {
		s.completions.EXPECT().MarkCompleted(gomock.Any(), w.ID, s.userID, "2024-03-05").Return(&marked, false, nil)

		rec := s.do(t, http.MethodPost, path, MarkCompletedRequest{Date: "2024-03-05"}, s.token)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[CompletionResponse](t, rec)
		assert.False(t, resp.Changed)
		assert.Equal(t, "Workout was already completed on that day", resp.Message)
		assert.Equal(t, []string{"2024-03-05"}, resp.Workout.Completions)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, path, `{"date": `, s.token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid timestamp", func(t *testing.T) {
		s.completions.EXPECT().MarkCompleted(gomock.Any(), w.ID, s.userID, "yesterday").
			Return(nil, false, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, "yesterday"))

		rec := s.do(t, http.MethodPost, path, MarkCompletedRequest{Date: "yesterday"}, s.token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorMessage(t, rec), "YYYY-MM-DD")
	})

	t.Run("concurrent writers", func(t *testing.T) {
		s.completions.EXPECT().MarkCompleted(gomock.Any(), w.ID, s.userID, "").Return(nil, false, service.ErrConcurrentModification)

		rec := s.do(t, http.MethodPost, path, nil, s.token)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("storage failure detail stays in the logs", func(t *testing.T) {
		s.completions.EXPECT().MarkCompleted(gomock.Any(), w.ID, s.userID, "").
			Return(nil, false, fmt.Errorf("save completions: %w", errors.New("mongo: socket closed")))

		rec := s.do(t, http.MethodPost, path, nil, s.token)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "mongo")
	})
}

func TestCompletionHandler_Unmark(t *testing.T) {
	s := newTestServer(t)
	w := sampleWorkout(s.userID)
	path := "/api/v1/workouts/" + w.ID.Hex() + "/completions"

	t.Run("removed", func(t *testing.T) {
		s.completions.EXPECT().Unmark(gomock.Any(), w.ID, s.userID, "2024-03-05").Return(w, true, nil)

		rec := s.do(t, http.MethodDelete, path+"?date=2024-03-05", nil, s.token)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[CompletionResponse](t, rec)
		assert.True(t, resp.Changed)
		assert.Equal(t, "Completion removed", resp.Message)
	})

	t.Run("nothing to remove", func(t *testing.T) {
		s.completions.EXPECT().Unmark(gomock.Any(), w.ID, s.userID, "").Return(w, false, nil)

		rec := s.do(t, http.MethodDelete, path, nil, s.token)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[CompletionResponse](t, rec)
		assert.False(t, resp.Changed)
		assert.Equal(t, "No completion recorded for that day", resp.Message)
	})

	t.Run("past day", func(t *testing.T) {
		s.completions.EXPECT().Unmark(gomock.Any(), w.ID, s.userID, "2024-03-04").Return(nil, false, service.ErrNotToday)

		rec := s.do(t, http.MethodDelete, path+"?date=2024-03-04", nil, s.token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, service.ErrNotToday.Error(), errorMessage(t, rec))
	})

	t.Run("someone else's workout", func(t *testing.T) {
		s.completions.EXPECT().Unmark(gomock.Any(), w.ID, s.userID, "").Return(nil, false, service.ErrForbidden)

		rec := s.do(t, http.MethodDelete, path, nil, s.token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "access denied", errorMessage(t, rec))
	})
}

