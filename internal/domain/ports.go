package domain

// BlobStore is the persistence port the application services talk to.
// Keys are opaque, user-scoped paths like "default/dishes.json".
type BlobStore interface {
	// Load returns the blob's bytes, or (nil, nil) when the key does not
	// exist yet. Absence is a normal state, not an error.
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// ConfigLoader loads the project configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}
