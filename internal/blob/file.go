package blob

import (
	"os"
	"path/filepath"
	"strings"
)

const fileExt = ".json"

// FileStore keeps each blob in its own file under a directory, one file per
// key. The default directory lives under the user config dir.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// DefaultDir returns the standard layout directory,
// ~/.config/tableplan/layouts on Linux.
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "tableplan", "layouts")
}

// Save writes the blob for key, replacing any previous contents.
func (s *FileStore) Save(key string, data []byte) error {
	return os.WriteFile(s.path(key), data, 0o644)
}

// Load reads the blob for key. A missing file is reported as absent, not
// as an error.
func (s *FileStore) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Delete removes the blob for key. Deleting an absent key is not an error.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Keys lists the stored keys.
func (s *FileStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, fileExt))
	}
	return keys, nil
}

// path maps a key to a file name. Separators are flattened so a key can
// never escape the store directory.
func (s *FileStore) path(key string) string {
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	safe = strings.ReplaceAll(safe, "/", "_")
	return filepath.Join(s.dir, safe+fileExt)
}
