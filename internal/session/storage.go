package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Record is the persisted session layout: a single JSON record kept at
// a fixed path. An absent file means no session.
type Record struct {
	Token     string `json:"token"`
	Identity  string `json:"identity"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}

// Storage persists the session record across process restarts.
type Storage interface {
	// Load reads the persisted record. The second return value is
	// false when no record exists. A corrupt record returns an error;
	// callers are expected to discard it via Clear.
	Load() (Record, bool, error)

	// Save writes the record, replacing any previous one.
	Save(Record) error

	// Clear removes the persisted record. Clearing an absent record is
	// not an error.
	Clear() error
}

// FileStorage keeps the session record as a JSON file with owner-only
// permissions.
type FileStorage struct {
	path string
}

// DefaultPath returns the standard session file location under the
// user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "taskdeck", "session.json"), nil
}

// NewFileStorage returns file-backed storage at path. An empty path
// selects DefaultPath.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return &FileStorage{path: path}, nil
}

// Path returns the file location in use.
func (f *FileStorage) Path() string {
	return f.path
}

// Load implements Storage.
func (f *FileStorage) Load() (Record, bool, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to read session file: %w", err)
	}
	if len(raw) == 0 {
		return Record{}, false, fmt.Errorf("session file is empty")
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, false, fmt.Errorf("failed to parse session file: %w", err)
	}
	return rec, true, nil
}

// Save implements Storage.
func (f *FileStorage) Save(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear implements Storage.
func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
