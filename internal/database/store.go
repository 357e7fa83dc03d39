package database

// Store is a key-value document store. Each key holds one JSON document;
// the repositories above it decide what lives under which key.
//
// Get returns ok=false when the key has never been written. Set replaces
// the whole document; a Set that returns nil must be visible to the next
// Get in full (no partially written document is ever readable).
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Close() error
}
