package kv

// Store is a namespaced key-value surface holding whole JSON-serializable
// values. There is no partial or field-level access: callers read, modify and
// write back entire values.
type Store interface {
	// Get returns the raw value for key. The boolean reports whether the key
	// exists; a missing key is not an error.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
