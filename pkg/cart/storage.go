package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Storage persists the item collection. Only items are stored; the
// open/closed flag is transient UI state.
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// persistedState is the on-disk shape: {"items":[...]}.
type persistedState struct {
	Items []Item `json:"items"`
}

// FileStorage keeps the cart as a JSON document on disk.
type FileStorage struct {
	path string
}

// NewFileStorage stores the document as <dir>/<key>.json.
func NewFileStorage(dir, key string) *FileStorage {
	return &FileStorage{path: filepath.Join(dir, key+".json")}
}

func (f *FileStorage) Load() ([]Item, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state.Items, nil
}

func (f *FileStorage) Save(items []Item) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(persistedState{Items: items})
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0644)
}
