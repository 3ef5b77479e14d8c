package highscore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// record is the on-disk YAML layout.
type record struct {
	Kills   int       `yaml:"kills"`
	SavedAt time.Time `yaml:"saved_at"`
}

// FileStore keeps the score in a small YAML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load implements Store. A missing file is a zero score.
func (f *FileStore) Load(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading high score: %w", err)
	}
	var r record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("parsing high score: %w", err)
	}
	return r.Kills, nil
}

// Save implements Store. The file is replaced atomically.
func (f *FileStore) Save(ctx context.Context, kills int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := yaml.Marshal(record{Kills: kills, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshaling high score: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating high score dir: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing high score: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing high score: %w", err)
	}
	return nil
}
