package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scratch is the session-scoped KV scope: one small file per key inside a
// directory, conventionally under the OS temp dir.
//
// The temp dir gives the session marker its intended lifetime - values
// survive between commands but not across a reboot or temp cleanup, the
// way sessionStorage outlives a page navigation but not the browser.
type Scratch struct {
	dir string
}

var _ KV = (*Scratch)(nil)

// OpenScratch creates the scratch directory if needed and returns the scope.
func OpenScratch(dir string) (*Scratch, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create scratch dir: %w", err)
	}
	return &Scratch{dir: dir}, nil
}

// Get returns the value stored under key, with ok=false when absent.
func (s *Scratch) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Scratch) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key if present. Deleting an absent key is a no-op.
func (s *Scratch) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Clear removes every key in the scope. Ends the session wholesale.
func (s *Scratch) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear scratch: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return fmt.Errorf("clear scratch: %w", err)
		}
	}
	return nil
}

// path maps a key to a file name. Keys are fixed identifiers chosen by the
// application, but slashes are neutralized anyway so a hostile key cannot
// escape the directory.
func (s *Scratch) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe)
}
