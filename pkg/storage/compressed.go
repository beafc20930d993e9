package storage

import (
	"bytes"
	"context"
	"io"

	"github.com/vinayvenu/orthanc/pkg/compression"
)

// compressedStore wraps a Store so attachments are kept compressed at rest.
// Size reports the uncompressed size.
type compressedStore struct {
	inner      Store
	compressor compression.Compressor
}

// NewCompressed returns a Store that compresses payloads before handing
// them to inner and uncompresses them on the way back.
func NewCompressed(inner Store, compressor compression.Compressor) Store {
	return &compressedStore{inner: inner, compressor: compressor}
}

func (s *compressedStore) Create(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &StoreError{Backend: "compressed", Op: "create", Err: err}
	}

	compressed, err := s.compressor.Compress(data)
	if err != nil {
		return "", &StoreError{Backend: "compressed", Op: "create", Err: err}
	}

	return s.inner.Create(ctx, bytes.NewReader(compressed))
}

func (s *compressedStore) Read(ctx context.Context, uid string) (io.ReadCloser, error) {
	rc, err := s.inner.Read(ctx, uid)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	compressed, err := io.ReadAll(rc)
	if err != nil {
		return nil, &StoreError{Backend: "compressed", UID: uid, Op: "read", Err: err}
	}

	data, err := s.compressor.Uncompress(compressed)
	if err != nil {
		return nil, &StoreError{Backend: "compressed", UID: uid, Op: "read", Err: err}
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Size reads only the size header of the stored blob, skipping inflation.
func (s *compressedStore) Size(ctx context.Context, uid string) (int64, error) {
	rc, err := s.inner.Read(ctx, uid)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	header := make([]byte, compression.HeaderSize)
	if _, err := io.ReadFull(rc, header); err != nil {
		return 0, &StoreError{Backend: "compressed", UID: uid, Op: "size", Err: err}
	}

	n, err := s.compressor.UncompressedSize(header)
	if err != nil {
		return 0, &StoreError{Backend: "compressed", UID: uid, Op: "size", Err: err}
	}
	return n, nil
}

func (s *compressedStore) Remove(ctx context.Context, uid string) error {
	return s.inner.Remove(ctx, uid)
}

func (s *compressedStore) ListAll(ctx context.Context) ([]string, error) {
	return s.inner.ListAll(ctx)
}

func (s *compressedStore) Clear(ctx context.Context) error {
	return s.inner.Clear(ctx)
}
