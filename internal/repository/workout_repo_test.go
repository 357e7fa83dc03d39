package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/AdityaPradhan00/gymtracker/internal/database"
	"github.com/AdityaPradhan00/gymtracker/internal/models"
)

// fakeClock hands out strictly increasing timestamps, one second apart.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	c.current = c.current.Add(time.Second)
	return c.current
}

// failingStore refuses every read and write, standing in for unavailable
// storage.
type failingStore struct{}

func (failingStore) Get(string) ([]byte, bool, error) {
	return nil, false, errors.New("storage unavailable")
}

func (failingStore) Set(string, []byte) error {
	return errors.New("storage unavailable")
}

func (failingStore) Close() error { return nil }

func newTestWorkoutRepository(store database.Store) *WorkoutRepository {
	repo := NewWorkoutRepository(store)
	clock := &fakeClock{current: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	repo.now = clock.Now

	seq := 0
	repo.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return repo
}

func TestWorkoutRepositoryCreate(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())

	id := repo.Create("Leg Day")
	if id == "" {
		t.Fatal("expected a generated id")
	}

	day, ok := repo.GetByID(id)
	if !ok {
		t.Fatal("expected created workout to be found")
	}
	if day.Name != "Leg Day" {
		t.Errorf("expected name Leg Day, got %q", day.Name)
	}
	if len(day.Exercises) != 0 {
		t.Errorf("expected empty exercise list, got %d", len(day.Exercises))
	}
	if !day.LastUpdated.Equal(day.CreatedAt) {
		t.Errorf("expected lastUpdated == createdAt on create, got %v / %v", day.LastUpdated, day.CreatedAt)
	}
}

func TestWorkoutRepositoryLastUpdatedMonotonic(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())

	id := repo.Create("Push Day")
	day, _ := repo.GetByID(id)
	previous := day.LastUpdated

	name := "Push Day A"
	mutations := []func(){
		func() { repo.Update(id, UpdateWorkoutDayInput{Name: &name}) },
		func() { repo.AddExerciseToWorkout(id, "ex-1") },
		func() { repo.AddExerciseToWorkout(id, "ex-2") },
		func() {
			day, _ := repo.GetByID(id)
			repo.LogExercise(id, day.Exercises[0].ID, models.ExerciseLog{Date: time.Now()})
		},
		func() {
			day, _ := repo.GetByID(id)
			repo.RemoveExerciseFromWorkout(id, day.Exercises[1].ID)
		},
	}

	for i, mutate := range mutations {
		mutate()
		day, _ := repo.GetByID(id)
		if day.LastUpdated.Before(previous) {
			t.Fatalf("mutation %d moved lastUpdated backwards: %v -> %v", i, previous, day.LastUpdated)
		}
		if day.LastUpdated.Before(day.CreatedAt) {
			t.Fatalf("mutation %d left lastUpdated before createdAt", i)
		}
		previous = day.LastUpdated
	}
}

func TestWorkoutRepositoryUpdateAlwaysBumpsLastUpdated(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())

	id := repo.Create("Pull Day")
	before, _ := repo.GetByID(id)

	// Even an empty update counts as touching the workout.
	repo.Update(id, UpdateWorkoutDayInput{})

	after, _ := repo.GetByID(id)
	if !after.LastUpdated.After(before.LastUpdated) {
		t.Errorf("expected lastUpdated to advance, got %v -> %v", before.LastUpdated, after.LastUpdated)
	}
}

func TestWorkoutRepositoryUpdateMissingIDIsNoOp(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	repo.Create("Leg Day")

	name := "Ghost"
	repo.Update("missing", UpdateWorkoutDayInput{Name: &name})

	if len(repo.List()) != 1 {
		t.Errorf("expected single workout, got %d", len(repo.List()))
	}
}

func TestWorkoutRepositoryAddExerciseIsIdempotent(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	id := repo.Create("Leg Day")

	repo.AddExerciseToWorkout(id, "ex-2")
	day, _ := repo.GetByID(id)
	stamp := day.LastUpdated

	repo.AddExerciseToWorkout(id, "ex-2")

	day, _ = repo.GetByID(id)
	if len(day.Exercises) != 1 {
		t.Fatalf("expected exactly one association, got %d", len(day.Exercises))
	}
	if !day.LastUpdated.Equal(stamp) {
		t.Errorf("duplicate add must not touch the workout, lastUpdated moved %v -> %v", stamp, day.LastUpdated)
	}

	repo.AddExerciseToWorkout(id, "ex-3")
	day, _ = repo.GetByID(id)
	if len(day.Exercises) != 2 {
		t.Fatalf("expected two associations, got %d", len(day.Exercises))
	}
	if day.Exercises[0].ID == day.Exercises[1].ID {
		t.Error("associations must have distinct ids")
	}
}

func TestWorkoutRepositoryAddExerciseMissingWorkoutIsNoOp(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	repo.AddExerciseToWorkout("missing", "ex-1")

	if len(repo.List()) != 0 {
		t.Errorf("expected no workouts, got %d", len(repo.List()))
	}
}

func TestWorkoutRepositoryRemoveExerciseByAssociationID(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	id := repo.Create("Leg Day")
	repo.AddExerciseToWorkout(id, "ex-2")

	day, _ := repo.GetByID(id)
	associationID := day.Exercises[0].ID

	// Removing by exercise id must not match; only the association id does.
	repo.RemoveExerciseFromWorkout(id, "ex-2")
	day, _ = repo.GetByID(id)
	if len(day.Exercises) != 1 {
		t.Fatalf("expected association to survive removal by exercise id, got %d", len(day.Exercises))
	}

	repo.RemoveExerciseFromWorkout(id, associationID)
	day, _ = repo.GetByID(id)
	if len(day.Exercises) != 0 {
		t.Errorf("expected association removed, got %d", len(day.Exercises))
	}
}

func TestWorkoutRepositoryRemoveMissingAssociationLeavesWorkoutUnchanged(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	id := repo.Create("Leg Day")
	repo.AddExerciseToWorkout(id, "ex-2")
	before, _ := repo.GetByID(id)

	repo.RemoveExerciseFromWorkout(id, "missing")

	after, _ := repo.GetByID(id)
	if len(after.Exercises) != 1 {
		t.Errorf("expected association count unchanged, got %d", len(after.Exercises))
	}
	if !after.LastUpdated.Equal(before.LastUpdated) {
		t.Errorf("no-op removal must not bump lastUpdated: %v -> %v", before.LastUpdated, after.LastUpdated)
	}
}

func TestWorkoutRepositoryLogExercise(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	id := repo.Create("Leg Day")
	repo.AddExerciseToWorkout(id, "ex-2")

	day, _ := repo.GetByID(id)
	associationID := day.Exercises[0].ID

	reps := 10
	weight := 135.0
	unit := "lbs"
	repo.LogExercise(id, associationID, models.ExerciseLog{
		ID:         "log-1",
		Date:       time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Reps:       &reps,
		Weight:     &weight,
		WeightUnit: &unit,
	})
	repo.LogExercise(id, associationID, models.ExerciseLog{
		ID:   "log-2",
		Date: time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		Reps: &reps,
	})

	day, _ = repo.GetByID(id)
	logs := day.Exercises[0].Logs
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].ID != "log-1" || logs[1].ID != "log-2" {
		t.Errorf("expected insertion order preserved, got %q then %q", logs[0].ID, logs[1].ID)
	}
	if logs[0].Weight == nil || *logs[0].Weight != 135 {
		t.Errorf("unexpected first log: %+v", logs[0])
	}
}

func TestWorkoutRepositoryLogExerciseFillsMissingLogID(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	id := repo.Create("Leg Day")
	repo.AddExerciseToWorkout(id, "ex-2")

	day, _ := repo.GetByID(id)
	repo.LogExercise(id, day.Exercises[0].ID, models.ExerciseLog{Date: time.Now()})

	day, _ = repo.GetByID(id)
	if day.Exercises[0].Logs[0].ID == "" {
		t.Error("expected a generated log id")
	}
}

func TestWorkoutRepositoryLogExerciseMissingTargetsAreNoOps(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	id := repo.Create("Leg Day")
	repo.AddExerciseToWorkout(id, "ex-2")

	repo.LogExercise("missing", "whatever", models.ExerciseLog{Date: time.Now()})
	repo.LogExercise(id, "missing", models.ExerciseLog{Date: time.Now()})

	day, _ := repo.GetByID(id)
	if len(day.Exercises[0].Logs) != 0 {
		t.Errorf("expected no logs, got %d", len(day.Exercises[0].Logs))
	}
}

func TestWorkoutRepositoryDeleteExerciseLog(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	id := repo.Create("Leg Day")
	repo.AddExerciseToWorkout(id, "ex-2")

	day, _ := repo.GetByID(id)
	associationID := day.Exercises[0].ID
	repo.LogExercise(id, associationID, models.ExerciseLog{ID: "log-1", Date: time.Now()})
	repo.LogExercise(id, associationID, models.ExerciseLog{ID: "log-2", Date: time.Now()})

	repo.DeleteExerciseLog(id, associationID, "log-1")

	day, _ = repo.GetByID(id)
	logs := day.Exercises[0].Logs
	if len(logs) != 1 || logs[0].ID != "log-2" {
		t.Errorf("expected only log-2 to remain, got %+v", logs)
	}

	repo.DeleteExerciseLog(id, associationID, "log-1") // already gone
	day, _ = repo.GetByID(id)
	if len(day.Exercises[0].Logs) != 1 {
		t.Errorf("expected repeat delete to be a no-op, got %d logs", len(day.Exercises[0].Logs))
	}
}

func TestWorkoutRepositoryDeleteCascades(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	id := repo.Create("Leg Day")
	repo.AddExerciseToWorkout(id, "ex-2")

	day, _ := repo.GetByID(id)
	repo.LogExercise(id, day.Exercises[0].ID, models.ExerciseLog{Date: time.Now()})

	repo.Delete(id)

	if _, ok := repo.GetByID(id); ok {
		t.Error("expected workout to be gone")
	}
	if len(repo.List()) != 0 {
		t.Errorf("expected empty list, got %d", len(repo.List()))
	}
}

func TestWorkoutRepositoryListRecent(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())

	first := repo.Create("Monday")
	repo.Create("Wednesday")
	third := repo.Create("Friday")

	// Touch the oldest workout so it becomes the most recent one.
	repo.AddExerciseToWorkout(first, "ex-1")

	recent := repo.ListRecent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(recent))
	}
	if recent[0].ID != first || recent[1].ID != third {
		t.Errorf("unexpected order: %q, %q", recent[0].Name, recent[1].Name)
	}
}

func TestWorkoutRepositorySnapshotUnaffectedByMutation(t *testing.T) {
	repo := newTestWorkoutRepository(database.NewMemoryStore())
	id := repo.Create("Leg Day")
	repo.AddExerciseToWorkout(id, "ex-2")

	snapshot, _ := repo.GetByID(id)
	associationID := snapshot.Exercises[0].ID

	repo.LogExercise(id, associationID, models.ExerciseLog{Date: time.Now()})
	repo.RemoveExerciseFromWorkout(id, associationID)

	if len(snapshot.Exercises) != 1 {
		t.Errorf("snapshot lost its association: %d", len(snapshot.Exercises))
	}
	if len(snapshot.Exercises[0].Logs) != 0 {
		t.Errorf("snapshot gained logs under its holder: %d", len(snapshot.Exercises[0].Logs))
	}
}

func TestWorkoutRepositoryRoundTrip(t *testing.T) {
	store := database.NewMemoryStore()
	repo := newTestWorkoutRepository(store)

	id := repo.Create("Leg Day")
	repo.AddExerciseToWorkout(id, "ex-2")
	day, _ := repo.GetByID(id)
	reps := 10
	repo.LogExercise(id, day.Exercises[0].ID, models.ExerciseLog{
		ID:   "log-1",
		Date: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		Reps: &reps,
	})

	reloaded := NewWorkoutRepository(store)

	got, ok := reloaded.GetByID(id)
	if !ok {
		t.Fatal("expected workout after reload")
	}
	want, _ := repo.GetByID(id)
	if got.Name != want.Name {
		t.Errorf("name mismatch: %q vs %q", got.Name, want.Name)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.LastUpdated.Equal(want.LastUpdated) {
		t.Errorf("timestamp mismatch after reload: %+v vs %+v", got, want)
	}
	if len(got.Exercises) != 1 || len(got.Exercises[0].Logs) != 1 {
		t.Fatalf("structure mismatch after reload: %+v", got)
	}
	if got.Exercises[0].Logs[0].Reps == nil || *got.Exercises[0].Logs[0].Reps != 10 {
		t.Errorf("log mismatch after reload: %+v", got.Exercises[0].Logs[0])
	}
}

func TestWorkoutRepositoryKeepsWorkingWhenStorageFails(t *testing.T) {
	repo := newTestWorkoutRepository(failingStore{})

	id := repo.Create("Leg Day")
	repo.AddExerciseToWorkout(id, "ex-2")

	day, ok := repo.GetByID(id)
	if !ok {
		t.Fatal("expected in-memory state to survive storage failure")
	}
	if len(day.Exercises) != 1 {
		t.Errorf("expected 1 association, got %d", len(day.Exercises))
	}
}
