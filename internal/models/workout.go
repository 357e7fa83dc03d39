package models

import "time"

// WorkoutDay owns an ordered list of exercise associations, each of which
// owns its logs. The exercises slice keeps insertion order; that order is
// the display order.
type WorkoutDay struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Exercises   []WorkoutExercise `json:"exercises"`
	CreatedAt   time.Time         `json:"createdAt"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

// WorkoutExercise ties an exercise from the catalog into a workout day.
// ExerciseID is a weak reference: the exercise may have been removed from
// the catalog since, so consumers must resolve it and skip on a miss.
type WorkoutExercise struct {
	ID         string        `json:"id"`
	ExerciseID string        `json:"exerciseId"`
	Logs       []ExerciseLog `json:"logs"`
}

// ExerciseLog is a single performed set. Either Reps (plus optional
// Weight/WeightUnit) or Duration is set, depending on the tracking type of
// the exercise at the time of logging. Logs are append-only; they are never
// edited after creation, only deleted.
type ExerciseLog struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Reps       *int      `json:"reps,omitempty"`
	Weight     *float64  `json:"weight,omitempty"`
	WeightUnit *string   `json:"weightUnit,omitempty"`
	Duration   *int      `json:"duration,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
}
