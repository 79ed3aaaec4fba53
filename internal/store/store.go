package store

// KV is a string key/value store with presence-aware reads.
//
// Get returns (value, true, nil) when the key exists and ("", false, nil)
// when it does not; the error return is reserved for storage faults.
// Delete of an absent key is a no-op, not an error.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
