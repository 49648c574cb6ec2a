package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Store persists uploaded product photos on disk. Files are written under
// a generated name; only that name is handed back for the caller to
// persist alongside the record.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating it when missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

// MustNewStore creates a store at the configured uploads directory.
func MustNewStore() *Store {
	store, err := NewStore(viper.GetString("uploads.dir"))
	if err != nil {
		panic(err)
	}

	return store
}

// Dir returns the directory uploads are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the upload under a generated name, keeping the original
// extension, and returns the stored file name.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return name, nil
}
