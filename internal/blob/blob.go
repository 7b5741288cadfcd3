// Package blob provides key-value blob persistence for saved layouts.
// Stores hold opaque serialized state; interpreting it is the caller's job.
package blob

// Store persists named blobs. Load reports ok=false when the key is absent;
// callers treat malformed contents the same way and fall back to defaults.
type Store interface {
	Save(key string, data []byte) error
	Load(key string) (data []byte, ok bool, err error)
	Delete(key string) error
	Keys() ([]string, error)
}
