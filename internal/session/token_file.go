package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenFile persists the single auth token across processes. The
// token is the only client state that survives the session; removal
// happens on logout and on any 401 eviction.
type TokenFile struct {
	path string
}

// NewTokenFile creates a token store at the given path.
func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

// Save writes the token, creating parent directories as needed. The
// file is readable by the owner only.
func (f *TokenFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Load reads the persisted token. A missing file yields an empty
// token, not an error.
func (f *TokenFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Remove deletes the persisted token. A missing file is not an error.
func (f *TokenFile) Remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
