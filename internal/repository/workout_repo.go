package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/AdityaPradhan00/gymtracker/internal/database"
	"github.com/AdityaPradhan00/gymtracker/internal/models"
	"github.com/google/uuid"
)

// UpdateWorkoutDayInput carries a partial workout day update. Nil fields are
// left unchanged.
type UpdateWorkoutDayInput struct {
	Name *string
}

// WorkoutRepository owns workout days, their exercise associations and logs.
//
// Mutations are copy-on-write: each one builds fresh slices for everything it
// touches and swaps the whole snapshot, so a slice handed out by List or
// GetByID is never modified underneath its holder. Every mutation that finds
// its workout bumps LastUpdated; a lookup miss at any level (workout,
// association, log) is a silent no-op rather than an error, so destructive
// UI actions on stale state cannot crash.
type WorkoutRepository struct {
	mu    sync.RWMutex
	store database.Store
	days  []models.WorkoutDay

	now   func() time.Time
	newID func() string
}

func NewWorkoutRepository(store database.Store) *WorkoutRepository {
	days, _ := loadDocument[[]models.WorkoutDay](store, workoutDaysKey)
	if days == nil {
		days = []models.WorkoutDay{}
	}
	return &WorkoutRepository{
		store: store,
		days:  days,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List returns all workout days in creation order.
func (r *WorkoutRepository) List() []models.WorkoutDay {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.days
}

// ListRecent returns up to limit workout days, most recently updated first.
func (r *WorkoutRepository) ListRecent(limit int) []models.WorkoutDay {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recent := make([]models.WorkoutDay, len(r.days))
	copy(recent, r.days)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].LastUpdated.After(recent[j].LastUpdated)
	})
	if limit >= 0 && limit < len(recent) {
		recent = recent[:limit]
	}
	return recent
}

func (r *WorkoutRepository) GetByID(id string) (models.WorkoutDay, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, day := range r.days {
		if day.ID == id {
			return day, true
		}
	}
	return models.WorkoutDay{}, false
}

// Create adds an empty workout day and returns its generated id so the
// caller can navigate straight to it.
func (r *WorkoutRepository) Create(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	day := models.WorkoutDay{
		ID:          r.newID(),
		Name:        name,
		Exercises:   []models.WorkoutExercise{},
		CreatedAt:   now,
		LastUpdated: now,
	}

	days := make([]models.WorkoutDay, 0, len(r.days)+1)
	days = append(days, r.days...)
	days = append(days, day)
	r.days = days
	saveDocument(r.store, workoutDaysKey, r.days)
	return day.ID
}

// Update merges the non-nil fields of input into the workout day and
// refreshes LastUpdated regardless of which fields changed.
func (r *WorkoutRepository) Update(id string, input UpdateWorkoutDayInput) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return
	}

	day := r.days[idx]
	if input.Name != nil {
		day.Name = *input.Name
	}
	day.LastUpdated = r.now()
	r.replaceDay(idx, day)
}

// Delete removes a workout day together with all its associations and logs.
func (r *WorkoutRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	days := make([]models.WorkoutDay, 0, len(r.days))
	removed := false
	for _, day := range r.days {
		if day.ID == id {
			removed = true
			continue
		}
		days = append(days, day)
	}
	if !removed {
		return
	}
	r.days = days
	saveDocument(r.store, workoutDaysKey, r.days)
}

// AddExerciseToWorkout appends a new association with an empty log list.
// If the workout already references the exercise the call is a no-op, so a
// workout never holds two associations for the same exercise.
func (r *WorkoutRepository) AddExerciseToWorkout(workoutID, exerciseID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(workoutID)
	if idx < 0 {
		return
	}

	day := r.days[idx]
	for _, exercise := range day.Exercises {
		if exercise.ExerciseID == exerciseID {
			return
		}
	}

	exercises := make([]models.WorkoutExercise, 0, len(day.Exercises)+1)
	exercises = append(exercises, day.Exercises...)
	exercises = append(exercises, models.WorkoutExercise{
		ID:         r.newID(),
		ExerciseID: exerciseID,
		Logs:       []models.ExerciseLog{},
	})
	day.Exercises = exercises
	day.LastUpdated = r.now()
	r.replaceDay(idx, day)
}

// RemoveExerciseFromWorkout removes an association by its own id, not by the
// exercise it points at. Its logs go with it.
func (r *WorkoutRepository) RemoveExerciseFromWorkout(workoutID, workoutExerciseID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(workoutID)
	if idx < 0 {
		return
	}

	day := r.days[idx]
	exercises := make([]models.WorkoutExercise, 0, len(day.Exercises))
	removed := false
	for _, exercise := range day.Exercises {
		if exercise.ID == workoutExerciseID {
			removed = true
			continue
		}
		exercises = append(exercises, exercise)
	}
	if !removed {
		return
	}

	day.Exercises = exercises
	day.LastUpdated = r.now()
	r.replaceDay(idx, day)
}

// LogExercise appends a log entry to an association. The repository stores
// the entry as given; whether reps or duration is populated to match the
// exercise's tracking type is the caller's contract, checked upstream.
func (r *WorkoutRepository) LogExercise(workoutID, workoutExerciseID string, entry models.ExerciseLog) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(workoutID)
	if idx < 0 {
		return
	}

	day := r.days[idx]
	exIdx := -1
	for i, exercise := range day.Exercises {
		if exercise.ID == workoutExerciseID {
			exIdx = i
			break
		}
	}
	if exIdx < 0 {
		return
	}

	if entry.ID == "" {
		entry.ID = r.newID()
	}

	exercise := day.Exercises[exIdx]
	logs := make([]models.ExerciseLog, 0, len(exercise.Logs)+1)
	logs = append(logs, exercise.Logs...)
	logs = append(logs, entry)
	exercise.Logs = logs

	exercises := make([]models.WorkoutExercise, len(day.Exercises))
	copy(exercises, day.Exercises)
	exercises[exIdx] = exercise
	day.Exercises = exercises
	day.LastUpdated = r.now()
	r.replaceDay(idx, day)
}

// DeleteExerciseLog removes a log entry by id.
func (r *WorkoutRepository) DeleteExerciseLog(workoutID, workoutExerciseID, logID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(workoutID)
	if idx < 0 {
		return
	}

	day := r.days[idx]
	exIdx := -1
	for i, exercise := range day.Exercises {
		if exercise.ID == workoutExerciseID {
			exIdx = i
			break
		}
	}
	if exIdx < 0 {
		return
	}

	exercise := day.Exercises[exIdx]
	logs := make([]models.ExerciseLog, 0, len(exercise.Logs))
	removed := false
	for _, entry := range exercise.Logs {
		if entry.ID == logID {
			removed = true
			continue
		}
		logs = append(logs, entry)
	}
	if !removed {
		return
	}
	exercise.Logs = logs

	exercises := make([]models.WorkoutExercise, len(day.Exercises))
	copy(exercises, day.Exercises)
	exercises[exIdx] = exercise
	day.Exercises = exercises
	day.LastUpdated = r.now()
	r.replaceDay(idx, day)
}

// indexOf must be called with the lock held.
func (r *WorkoutRepository) indexOf(id string) int {
	for i, day := range r.days {
		if day.ID == id {
			return i
		}
	}
	return -1
}

// replaceDay swaps in a new snapshot with days[idx] replaced and persists it.
// Must be called with the lock held.
func (r *WorkoutRepository) replaceDay(idx int, day models.WorkoutDay) {
	days := make([]models.WorkoutDay, len(r.days))
	copy(days, r.days)
	days[idx] = day
	r.days = days
	saveDocument(r.store, workoutDaysKey, r.days)
}
