// Package storage defines the attachment store used to keep the raw files
// behind catalogued records. Every stored attachment is addressed by a
// generated UUID; backends never interpret the payload.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound indicates an attachment UUID unknown to the store.
var ErrNotFound = errors.New("attachment not found")

// StoreError ties a failed storage operation to the backend and attachment
// it concerned.
type StoreError struct {
	Backend string
	UID     string
	Op      string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("storage operation %s failed for %s on backend %s: %v", e.Op, e.UID, e.Backend, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store is an attachment store. Implementations must be safe for concurrent
// use.
type Store interface {
	// Create stores the content of r under a freshly generated UUID and
	// returns that UUID.
	Create(ctx context.Context, r io.Reader) (string, error)

	// Read opens the attachment with the given UUID. The caller closes the
	// returned reader.
	Read(ctx context.Context, uid string) (io.ReadCloser, error)

	// Size returns the stored size in bytes of the attachment.
	Size(ctx context.Context, uid string) (int64, error)

	// Remove deletes the attachment. Removing an unknown UUID fails with
	// ErrNotFound.
	Remove(ctx context.Context, uid string) error

	// ListAll returns the UUIDs of every stored attachment.
	ListAll(ctx context.Context) ([]string, error)

	// Clear removes every stored attachment.
	Clear(ctx context.Context) error
}
