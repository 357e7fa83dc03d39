package repository

import (
	"sync"

	"github.com/AdityaPradhan00/gymtracker/internal/database"
	"github.com/AdityaPradhan00/gymtracker/internal/models"
)

// UpdateExerciseInput carries a partial exercise update. Nil fields are left
// unchanged.
type UpdateExerciseInput struct {
	Name         *string
	Description  *string
	VideoURL     *string
	TrackingType *models.TrackingType
}

// ExerciseRepository owns the exercise catalog. The catalog is read from the
// store once at construction and written through on every mutation; on first
// run it is seeded with a small starter set so the app is usable with zero
// setup.
type ExerciseRepository struct {
	mu        sync.RWMutex
	store     database.Store
	exercises []models.Exercise
}

// NewExerciseRepository loads the catalog. When the store holds no catalog
// yet and seed is true, the starter set is written; seed=false starts empty
// (for shells that bring their own catalog).
func NewExerciseRepository(store database.Store, seed bool) *ExerciseRepository {
	exercises, found := loadDocument[[]models.Exercise](store, exercisesKey)
	if !found {
		if seed {
			exercises = seedExercises()
		} else {
			exercises = []models.Exercise{}
		}
		saveDocument(store, exercisesKey, exercises)
	}
	return &ExerciseRepository{store: store, exercises: exercises}
}

// List returns the catalog in insertion order. The returned slice is a
// snapshot; mutations never modify it in place.
func (r *ExerciseRepository) List() []models.Exercise {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.exercises
}

func (r *ExerciseRepository) GetByID(id string) (models.Exercise, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, exercise := range r.exercises {
		if exercise.ID == id {
			return exercise, true
		}
	}
	return models.Exercise{}, false
}

// Add appends an exercise with a caller-generated id. Submitting an id that
// is already taken is rejected with ErrConflict.
func (r *ExerciseRepository) Add(exercise models.Exercise) error {
	if exercise.ID == "" {
		return ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.exercises {
		if existing.ID == exercise.ID {
			return ErrConflict
		}
	}

	exercises := make([]models.Exercise, 0, len(r.exercises)+1)
	exercises = append(exercises, r.exercises...)
	exercises = append(exercises, exercise)
	r.exercises = exercises
	saveDocument(r.store, exercisesKey, r.exercises)
	return nil
}

// Update merges the non-nil fields of input into the exercise. A missing id
// is a no-op.
func (r *ExerciseRepository) Update(id string, input UpdateExerciseInput) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, exercise := range r.exercises {
		if exercise.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	exercise := r.exercises[idx]
	if input.Name != nil {
		exercise.Name = *input.Name
	}
	if input.Description != nil {
		exercise.Description = input.Description
	}
	if input.VideoURL != nil {
		exercise.VideoURL = input.VideoURL
	}
	if input.TrackingType != nil {
		exercise.TrackingType = *input.TrackingType
	}

	exercises := make([]models.Exercise, len(r.exercises))
	copy(exercises, r.exercises)
	exercises[idx] = exercise
	r.exercises = exercises
	saveDocument(r.store, exercisesKey, r.exercises)
}

// Remove deletes an exercise from the catalog. A missing id is a no-op.
// Workout associations referencing the exercise are not touched; they become
// orphaned and are skipped by consumers.
func (r *ExerciseRepository) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercises := make([]models.Exercise, 0, len(r.exercises))
	removed := false
	for _, exercise := range r.exercises {
		if exercise.ID == id {
			removed = true
			continue
		}
		exercises = append(exercises, exercise)
	}
	if !removed {
		return
	}
	r.exercises = exercises
	saveDocument(r.store, exercisesKey, r.exercises)
}

func seedExercises() []models.Exercise {
	return []models.Exercise{
		{
			ID:           "ex-1",
			Name:         "Bench Press",
			Description:  strPtr("Lie on a flat bench and push the barbell up"),
			VideoURL:     strPtr("https://www.youtube.com/watch?v=rT7DgCr-3pg"),
			TrackingType: models.TrackingTypeReps,
		},
		{
			ID:           "ex-2",
			Name:         "Squat",
			Description:  strPtr("Lower your body by bending your knees as if sitting back into a chair"),
			VideoURL:     strPtr("https://www.youtube.com/watch?v=bEv6CCg2BC8"),
			TrackingType: models.TrackingTypeReps,
		},
		{
			ID:           "ex-3",
			Name:         "Plank",
			Description:  strPtr("Hold a push-up position with your body in a straight line"),
			VideoURL:     strPtr("https://www.youtube.com/watch?v=pSHjTRCQxIw"),
			TrackingType: models.TrackingTypeTime,
		},
		{
			ID:           "ex-4",
			Name:         "Pull-up",
			Description:  strPtr("Hang from a bar and pull your body up until your chin is over the bar"),
			VideoURL:     strPtr("https://www.youtube.com/watch?v=eGo4IYlbE5g"),
			TrackingType: models.TrackingTypeReps,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
