// Package fs implements the filesystem attachment store. Attachments are
// spread over two levels of fan-out directories derived from their UUID
// ("ab/cd/<uid>") so no single directory grows unbounded.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vinayvenu/orthanc/pkg/storage"
	"github.com/vinayvenu/orthanc/pkg/utils"
)

// Config options for the filesystem store.
type Config struct {
	BaseDir string // Base directory holding the fan-out tree
}

// Store is a filesystem implementation of storage.Store.
type Store struct {
	baseDir string
}

// New creates a filesystem store rooted at the configured base directory,
// creating it if needed.
func New(config Config) (*Store, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Store{baseDir: config.BaseDir}, nil
}

// path maps a UUID to its location in the fan-out tree.
func (s *Store) path(uid string) string {
	return filepath.Join(s.baseDir, uid[0:2], uid[2:4], uid)
}

func (s *Store) Create(ctx context.Context, r io.Reader) (string, error) {
	uid := uuid.NewString()
	p := s.path(uid)

	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return "", &storage.StoreError{Backend: "fs", UID: uid, Op: "create", Err: err}
	}

	f, err := os.Create(p)
	if err != nil {
		return "", &storage.StoreError{Backend: "fs", UID: uid, Op: "create", Err: err}
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(p)
		return "", &storage.StoreError{Backend: "fs", UID: uid, Op: "create", Err: err}
	}

	if err := f.Close(); err != nil {
		os.Remove(p)
		return "", &storage.StoreError{Backend: "fs", UID: uid, Op: "create", Err: err}
	}

	return uid, nil
}

func (s *Store) Read(ctx context.Context, uid string) (io.ReadCloser, error) {
	if !utils.IsUUID(uid) {
		return nil, &storage.StoreError{Backend: "fs", UID: uid, Op: "read", Err: storage.ErrNotFound}
	}

	f, err := os.Open(s.path(uid))
	if os.IsNotExist(err) {
		return nil, &storage.StoreError{Backend: "fs", UID: uid, Op: "read", Err: storage.ErrNotFound}
	} else if err != nil {
		return nil, &storage.StoreError{Backend: "fs", UID: uid, Op: "read", Err: err}
	}

	return f, nil
}

func (s *Store) Size(ctx context.Context, uid string) (int64, error) {
	if !utils.IsUUID(uid) {
		return 0, &storage.StoreError{Backend: "fs", UID: uid, Op: "size", Err: storage.ErrNotFound}
	}

	info, err := os.Stat(s.path(uid))
	if os.IsNotExist(err) {
		return 0, &storage.StoreError{Backend: "fs", UID: uid, Op: "size", Err: storage.ErrNotFound}
	} else if err != nil {
		return 0, &storage.StoreError{Backend: "fs", UID: uid, Op: "size", Err: err}
	}

	return info.Size(), nil
}

func (s *Store) Remove(ctx context.Context, uid string) error {
	if !utils.IsUUID(uid) {
		return &storage.StoreError{Backend: "fs", UID: uid, Op: "remove", Err: storage.ErrNotFound}
	}

	err := os.Remove(s.path(uid))
	if os.IsNotExist(err) {
		return &storage.StoreError{Backend: "fs", UID: uid, Op: "remove", Err: storage.ErrNotFound}
	} else if err != nil {
		return &storage.StoreError{Backend: "fs", UID: uid, Op: "remove", Err: err}
	}

	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]string, error) {
	uids := make([]string, 0)

	err := filepath.WalkDir(s.baseDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && utils.IsUUID(d.Name()) {
			uids = append(uids, d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, &storage.StoreError{Backend: "fs", Op: "list", Err: err}
	}

	return uids, nil
}

func (s *Store) Clear(ctx context.Context) error {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return &storage.StoreError{Backend: "fs", Op: "clear", Err: err}
	}

	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(s.baseDir, entry.Name())); err != nil {
			return &storage.StoreError{Backend: "fs", Op: "clear", Err: err}
		}
	}

	return nil
}
