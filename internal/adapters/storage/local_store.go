// Package storage holds the ImageStore backends: a directory on local disk
// and an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
)

// LocalStore keeps images as flat files in one directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(ctx context.Context, filename string, upload domain.ImageUpload) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if _, err := io.Copy(f, upload.Content); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return f.Close()
}

func (s *LocalStore) Delete(ctx context.Context, filename string) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", filename, err)
	}
	return nil
}

func (s *LocalStore) Open(ctx context.Context, filename string) (*domain.StoredObject, error) {
	path, err := s.path(filename)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", filename, err)
	}

	return &domain.StoredObject{
		Body:        f,
		ContentType: mime.TypeByExtension(filepath.Ext(filename)),
		Size:        info.Size(),
	}, nil
}

// path rejects anything that is not a bare file name.
func (s *LocalStore) path(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." || filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid image name %q", filename)
	}
	return filepath.Join(s.dir, filename), nil
}
