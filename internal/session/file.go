package session

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/nfrund/marketplace/internal/domain"
	"github.com/spf13/afero"
)

// File keeps the marketplace token in a file. The CLI uses it the way the
// browser uses the session cookie.
type File struct {
	fs   afero.Fs
	path string
}

// NewFile creates a File token store backed by fsys at path.
func NewFile(fsys afero.Fs, path string) *File {
	return &File{fs: fsys, path: path}
}

// Path returns the token file location.
func (s *File) Path() string {
	return s.path
}

// Load reads the stored token. A missing file yields an anonymous session.
func (s *File) Load() (domain.Session, error) {
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Anonymous(), nil
		}
		return domain.Anonymous(), fmt.Errorf("failed to read token file: %w", err)
	}
	return domain.Authenticated(strings.TrimSpace(string(raw))), nil
}

// Save writes token to the file, creating its directory when needed.
func (s *File) Save(token string) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
