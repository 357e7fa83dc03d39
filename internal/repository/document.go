package repository

import (
	"encoding/json"

	"github.com/AdityaPradhan00/gymtracker/internal/database"
	log "github.com/sirupsen/logrus"
)

// Document keys of the three top-level collections.
const (
	exercisesKey   = "exercises"
	workoutDaysKey = "workout-days"
	settingsKey    = "settings"
)

// loadDocument reads and decodes one document. A missing key reports
// found=false; a store failure or undecodable document is logged and treated
// as absent, so construction never fails on bad storage.
func loadDocument[T any](store database.Store, key string) (value T, found bool) {
	raw, ok, err := store.Get(key)
	if err != nil {
		log.Errorf("failed to read document %q, starting from defaults: %s", key, err)
		return value, false
	}
	if !ok {
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Errorf("document %q is malformed, starting from defaults: %s", key, err)
		var zero T
		return zero, false
	}
	return value, true
}

// saveDocument writes a document through to the store. A write failure is
// logged and swallowed: the repository keeps serving its in-memory state for
// the rest of the session instead of failing the mutation.
func saveDocument[T any](store database.Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to encode document %q: %s", key, err)
		return
	}
	if err := store.Set(key, raw); err != nil {
		log.Errorf("failed to persist document %q, keeping in-memory copy: %s", key, err)
	}
}
