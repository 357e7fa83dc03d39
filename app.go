// Package gymtracker is the data layer of a single-device workout tracker:
// an exercise catalog, workout days with per-session logs, user settings and
// the aggregation that turns raw logs into progress statistics. It has no
// network or CLI surface; a UI shell embeds it and calls the repositories
// and services directly.
package gymtracker

import (
	"fmt"

	"github.com/AdityaPradhan00/gymtracker/internal/config"
	"github.com/AdityaPradhan00/gymtracker/internal/database"
	"github.com/AdityaPradhan00/gymtracker/internal/repository"
	"github.com/AdityaPradhan00/gymtracker/internal/services"
	log "github.com/sirupsen/logrus"
)

// App wires the store and the repositories together. Construct it once per
// process and pass it (or the individual repositories) down to whatever
// renders the UI.
type App struct {
	Exercises *repository.ExerciseRepository
	Workouts  *repository.WorkoutRepository
	Settings  *repository.SettingsRepository
	Progress  *services.ProgressService

	store database.Store
}

// New builds an App on the store backend selected by cfg. When the backend
// cannot be opened the app comes up anyway on an in-memory store: the
// session simply won't survive a restart, which beats crashing the UI.
func New(cfg *config.Config) (*App, error) {
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Errorf("falling back to in-memory storage: %s", err)
		store = database.NewMemoryStore()
	}

	return newApp(store, cfg.SeedCatalog), nil
}

// NewWithStore builds an App on a caller-supplied store. The catalog is
// seeded on first run.
func NewWithStore(store database.Store) *App {
	return newApp(store, true)
}

func newApp(store database.Store, seedCatalog bool) *App {
	exercises := repository.NewExerciseRepository(store, seedCatalog)
	workouts := repository.NewWorkoutRepository(store)

	return &App{
		Exercises: exercises,
		Workouts:  workouts,
		Settings:  repository.NewSettingsRepository(store),
		Progress:  services.NewProgressService(workouts, exercises),
		store:     store,
	}
}

func openStore(cfg *config.Config) (database.Store, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		store, err := database.NewSQLiteStore(cfg.SQLitePath())
		if err != nil {
			return nil, fmt.Errorf("unable to open sqlite store: %w", err)
		}
		return store, nil
	default:
		store, err := database.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("unable to open file store: %w", err)
		}
		return store, nil
	}
}

// NewRestTimer returns a countdown preloaded with the configured rest
// duration.
func (a *App) NewRestTimer() *services.RestTimer {
	return services.NewRestTimer(a.Settings.Get().RestTimerDuration)
}

func (a *App) Close() error {
	return a.store.Close()
}
