// Package memory implements an in-memory attachment store, used by tests
// and by deployments that do not need durable attachments.
package memory

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/vinayvenu/orthanc/pkg/storage"
)

// Store is an in-memory implementation of storage.Store.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{objects: make(map[string][]byte)}
}

func (s *Store) Create(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &storage.StoreError{Backend: "memory", Op: "create", Err: err}
	}

	uid := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[uid] = data

	return uid, nil
}

func (s *Store) Read(ctx context.Context, uid string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[uid]
	if !ok {
		return nil, &storage.StoreError{Backend: "memory", UID: uid, Op: "read", Err: storage.ErrNotFound}
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *Store) Size(ctx context.Context, uid string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[uid]
	if !ok {
		return 0, &storage.StoreError{Backend: "memory", UID: uid, Op: "size", Err: storage.ErrNotFound}
	}

	return int64(len(data)), nil
}

func (s *Store) Remove(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[uid]; !ok {
		return &storage.StoreError{Backend: "memory", UID: uid, Op: "remove", Err: storage.ErrNotFound}
	}

	delete(s.objects, uid)
	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uids := make([]string, 0, len(s.objects))
	for uid := range s.objects {
		uids = append(uids, uid)
	}
	return uids, nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.objects)
	return nil
}
