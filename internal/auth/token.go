package auth

import (
	"os"
	"path/filepath"
	"strings"
)

// FileTokenStore keeps the auth token in a plain file under the user's
// config directory, the terminal-app equivalent of browser local storage.
// Nothing else is persisted client-side.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store writing to the given path. An empty
// path falls back to DefaultTokenPath.
func NewFileTokenStore(path string) *FileTokenStore {
	if path == "" {
		path = DefaultTokenPath()
	}
	return &FileTokenStore{path: path}
}

// DefaultTokenPath returns the conventional token location
func DefaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "marinadesk", "token")
}

// Load reads the stored token, "" when none exists
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating parent directories as needed
func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the stored token; a missing file is not an error
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
