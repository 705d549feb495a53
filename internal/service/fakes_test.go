package service

import (
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/repository"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// workoutRepoMock keeps workouts in memory and enforces the same version check as the
// mongo repository.
type workoutRepoMock struct {
	mu       sync.Mutex
	workouts map[primitive.ObjectID]domain.Workout

	// beforeSave runs against the stored copy before the version check, standing in
	// for a writer that got there first.
	beforeSave func(stored *domain.Workout)
	saveErr    error
	listErr    error

	getCalls  int
	listCalls int
	saveCalls int
}

func newWorkoutRepoMock(workouts ...domain.Workout) *workoutRepoMock {
	r := &workoutRepoMock{workouts: make(map[primitive.ObjectID]domain.Workout)}
	for _, w := range workouts {
		r.workouts[w.ID] = cloneWorkout(w)
	}
	return r
}

func (r *workoutRepoMock) stored(id primitive.ObjectID) domain.Workout {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneWorkout(r.workouts[id])
}

func (r *workoutRepoMock) Create(_ context.Context, w *domain.Workout) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = primitive.NewObjectID()
	if w.Completions == nil {
		w.Completions = []time.Time{}
	}
	r.workouts[w.ID] = cloneWorkout(*w)
	return w.ID, nil
}

func (r *workoutRepoMock) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := cloneWorkout(w)
	return &c, nil
}

func (r *workoutRepoMock) ListByOwner(_ context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error) {
	return r.list(func(w domain.Workout) bool { return w.OwnerID == ownerID })
}

func (r *workoutRepoMock) ListCompletedBetween(_ context.Context, ownerID primitive.ObjectID, from, to time.Time) ([]domain.Workout, error) {
	in := func(t time.Time) bool { return !t.Before(from) && t.Before(to) }
	return r.list(func(w domain.Workout) bool {
		if w.OwnerID != ownerID {
			return false
		}
		if w.CompletedAt != nil && in(*w.CompletedAt) {
			return true
		}
		for _, c := range w.Completions {
			if in(c) {
				return true
			}
		}
		return false
	})
}

func (r *workoutRepoMock) list(keep func(domain.Workout) bool) ([]domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	result := []domain.Workout{}
	for _, w := range r.workouts {
		if keep(w) {
			result = append(result, cloneWorkout(w))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].LoggedDate.Equal(result[j].LoggedDate) {
			return result[i].LoggedDate.Before(result[j].LoggedDate)
		}
		return result[i].ID.Hex() < result[j].ID.Hex()
	})
	return result, nil
}

func (r *workoutRepoMock) Update(_ context.Context, w *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.workouts[w.ID]
	if !ok || stored.OwnerID != w.OwnerID {
		return repository.ErrNotFound
	}
	stored.Title = w.Title
	stored.Category = w.Category
	stored.Notes = w.Notes
	stored.Exercises = append([]domain.Exercise(nil), w.Exercises...)
	stored.TotalDuration = w.TotalDuration
	r.workouts[w.ID] = stored
	return nil
}

func (r *workoutRepoMock) SaveCompletions(_ context.Context, w *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	stored, ok := r.workouts[w.ID]
	if !ok || stored.OwnerID != w.OwnerID {
		return repository.ErrVersionConflict
	}
	if r.beforeSave != nil {
		r.beforeSave(&stored)
		r.workouts[w.ID] = stored
	}
	if stored.Version != w.Version {
		return repository.ErrVersionConflict
	}

	stored.Completions = append([]time.Time{}, w.Completions...)
	stored.Completed = w.Completed
	stored.CompletedAt = copyTime(w.CompletedAt)
	stored.Version++
	r.workouts[w.ID] = stored
	w.Version++
	return nil
}

func (r *workoutRepoMock) Delete(_ context.Context, workoutID, ownerID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.workouts[workoutID]
	if !ok || stored.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.workouts, workoutID)
	return nil
}

func cloneWorkout(w domain.Workout) domain.Workout {
	c := w
	c.Completions = append([]time.Time(nil), w.Completions...)
	c.Exercises = append([]domain.Exercise(nil), w.Exercises...)
	c.CompletedAt = copyTime(w.CompletedAt)
	return c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

type userRepoMock struct {
	mu        sync.Mutex
	users     map[primitive.ObjectID]domain.User
	createErr error
	getErr    error
}

func newUserRepoMock(users ...domain.User) *userRepoMock {
	r := &userRepoMock{users: make(map[primitive.ObjectID]domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *userRepoMock) Create(_ context.Context, u *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return primitive.NilObjectID, r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == strings.ToLower(u.Email) {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	u.ID = primitive.NewObjectID()
	r.users[u.ID] = *u
	return u.ID, nil
}

func (r *userRepoMock) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			c := u
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepoMock) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

type storedObject struct {
	contentType string
	body        []byte
}

type fileStorageMock struct {
	mu         sync.Mutex
	objects    map[string]storedObject
	deleted    []string
	putErr     error
	presignErr error
	// onPresign runs before a URL is signed.
	onPresign func()
}

func newFileStorageMock() *fileStorageMock {
	return &fileStorageMock{objects: make(map[string]storedObject)}
}

func (s *fileStorageMock) PutObject(_ context.Context, key, contentType string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.objects[key] = storedObject{contentType: contentType, body: body}
	return nil
}

func (s *fileStorageMock) GeneratePresignedDownloadURL(_ context.Context, key string, expires time.Duration) (string, error) {
	if s.onPresign != nil {
		s.onPresign()
	}
	if s.presignErr != nil {
		return "", s.presignErr
	}
	return "https://reports.example.test/" + key + "?expires=" + expires.String(), nil
}

func (s *fileStorageMock) DeleteObject(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return errors.New("no such key")
	}
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

type reportUploadRepoMock struct {
	mu        sync.Mutex
	uploads   []domain.ReportUpload
	createErr error
	listErr   error
}

func (r *reportUploadRepoMock) Create(_ context.Context, upload *domain.ReportUpload) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return primitive.NilObjectID, r.createErr
	}
	upload.ID = primitive.NewObjectID()
	r.uploads = append(r.uploads, *upload)
	return upload.ID, nil
}

func (r *reportUploadRepoMock) ListByOwner(_ context.Context, ownerID primitive.ObjectID) ([]domain.ReportUpload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []domain.ReportUpload{}
	for _, u := range r.uploads {
		if u.OwnerID == ownerID {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}
