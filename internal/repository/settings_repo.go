package repository

import (
	"sync"

	"github.com/AdityaPradhan00/gymtracker/internal/database"
	"github.com/AdityaPradhan00/gymtracker/internal/models"
)

const defaultRestTimerDuration = 60 // seconds

// SettingsRepository owns the settings singleton.
type SettingsRepository struct {
	mu       sync.RWMutex
	store    database.Store
	settings models.Settings
}

func NewSettingsRepository(store database.Store) *SettingsRepository {
	settings, found := loadDocument[models.Settings](store, settingsKey)
	if !found {
		settings = models.Settings{RestTimerDuration: defaultRestTimerDuration}
	}
	return &SettingsRepository{store: store, settings: settings}
}

func (r *SettingsRepository) Get() models.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// Update replaces the settings wholesale. It is a full replace, not a merge.
func (r *SettingsRepository) Update(settings models.Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = settings
	saveDocument(r.store, settingsKey, r.settings)
}
