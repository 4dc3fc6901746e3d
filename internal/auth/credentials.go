package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// CredentialStore persists the bearer credential between runs. An empty
// token from Load means no credential is stored.
type CredentialStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// CredentialFile stores the credential as a JSON file on disk
type CredentialFile struct {
	path string
}

// credentialData is the on-disk shape
type credentialData struct {
	Token string `json:"token"`
}

// NewCredentialFile creates a credential store backed by the given path
func NewCredentialFile(path string) *CredentialFile {
	return &CredentialFile{path: path}
}

// DefaultCredentialFile returns the credential store at the default
// location (~/.taskman/credentials.json)
func DefaultCredentialFile() (*CredentialFile, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewCredentialFile(filepath.Join(home, ".taskman", "credentials.json")), nil
}

// Load reads the stored credential. A missing file is not an error;
// it means no credential is stored.
func (f *CredentialFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	var cd credentialData
	if err := json.Unmarshal(data, &cd); err != nil {
		return "", err
	}
	return cd.Token, nil
}

// Save writes the credential, creating the parent directory if needed.
// The file is owner-readable only.
func (f *CredentialFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(credentialData{Token: token}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(f.path, data, 0600)
}

// Clear removes the stored credential. Clearing an empty store is a no-op.
func (f *CredentialFile) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
