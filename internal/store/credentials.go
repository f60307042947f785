// Package store persists the session token and identity between runs.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dataroomhq/dataroom-cli/internal/platform"
)

const credentialsFile = "credentials.json"

// Credentials is the durable session state. A non-empty token with a nil
// user means the profile must be re-fetched on next use.
type Credentials struct {
	Token string         `json:"token"`
	User  *platform.User `json:"user,omitempty"`
}

// CredentialStore reads and writes credentials under a config directory
type CredentialStore struct {
	dir string
}

// NewCredentialStore creates a store rooted at dir (e.g. ~/.dataroom)
func NewCredentialStore(dir string) *CredentialStore {
	return &CredentialStore{dir: dir}
}

// Path returns the credentials file location
func (s *CredentialStore) Path() string {
	return filepath.Join(s.dir, credentialsFile)
}

// Load reads the persisted credentials. A missing file is not an error;
// it returns empty credentials.
func (s *CredentialStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return &Credentials{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}

	return &creds, nil
}

// Save writes the credentials with owner-only permissions
func (s *CredentialStore) Save(creds *Credentials) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}

	return nil
}

// Clear removes the persisted credentials. Safe to call when none exist.
func (s *CredentialStore) Clear() error {
	err := os.Remove(s.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing credentials: %w", err)
	}
	return nil
}
