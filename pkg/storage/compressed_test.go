package storage_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/vinayvenu/orthanc/pkg/compression"
	"github.com/vinayvenu/orthanc/pkg/storage"
	"github.com/vinayvenu/orthanc/pkg/storage/memory"
)

func TestCompressedStore_RoundTrip(t *testing.T) {
	inner := memory.New()
	store := storage.NewCompressed(inner, &compression.ZlibCompressor{})
	ctx := context.Background()

	data := []byte(strings.Repeat("highly repetitive record payload ", 64))
	uid, err := store.Create(ctx, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rc, err := store.Read(ctx, uid)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	got, _ := io.ReadAll(rc)
	_ = rc.Close()
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: %d bytes, want %d", len(got), len(data))
	}

	// Size reports the uncompressed size, while the inner store holds the
	// smaller compressed form.
	size, err := store.Size(ctx, uid)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size != int64(len(data)) {
		t.Fatalf("size = %d, want %d", size, len(data))
	}

	innerSize, err := inner.Size(ctx, uid)
	if err != nil {
		t.Fatalf("inner size: %v", err)
	}
	if innerSize >= size {
		t.Fatalf("inner size %d not smaller than payload %d", innerSize, size)
	}
}

// inflationCountingCompressor counts Uncompress calls so tests can assert
// which operations trigger inflation.
type inflationCountingCompressor struct {
	compression.ZlibCompressor
	inflations int
}

func (c *inflationCountingCompressor) Uncompress(data []byte) ([]byte, error) {
	c.inflations++
	return c.ZlibCompressor.Uncompress(data)
}

func TestCompressedStore_SizeDoesNotInflate(t *testing.T) {
	c := &inflationCountingCompressor{}
	store := storage.NewCompressed(memory.New(), c)
	ctx := context.Background()

	data := []byte(strings.Repeat("attachment payload ", 128))
	uid, err := store.Create(ctx, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	size, err := store.Size(ctx, uid)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size != int64(len(data)) {
		t.Fatalf("size = %d, want %d", size, len(data))
	}
	if c.inflations != 0 {
		t.Fatalf("size inflated the blob %d times", c.inflations)
	}

	if _, err := store.Read(ctx, uid); err != nil {
		t.Fatalf("read: %v", err)
	}
	if c.inflations != 1 {
		t.Fatalf("read inflated the blob %d times, want 1", c.inflations)
	}
}

func TestCompressedStore_EmptyPayload(t *testing.T) {
	store := storage.NewCompressed(memory.New(), &compression.ZlibCompressor{})
	ctx := context.Background()

	uid, err := store.Create(ctx, bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rc, err := store.Read(ctx, uid)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	got, _ := io.ReadAll(rc)
	_ = rc.Close()
	if len(got) != 0 {
		t.Fatalf("expected empty payload, got %d bytes", len(got))
	}
}

func TestCompressedStore_DelegatesListing(t *testing.T) {
	inner := memory.New()
	store := storage.NewCompressed(inner, &compression.ZlibCompressor{})
	ctx := context.Background()

	uid, err := store.Create(ctx, bytes.NewReader([]byte("x")))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	uids, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(uids) != 1 || uids[0] != uid {
		t.Fatalf("list = %v, want [%s]", uids, uid)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Read(ctx, uid); err == nil {
		t.Fatal("read after clear succeeded")
	}
}
