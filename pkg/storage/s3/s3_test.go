package s3

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
)

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatal("expected error without bucket")
	}
}

func TestKeyPrefixing(t *testing.T) {
	s := &Store{prefix: ""}
	if got := s.key("abc"); got != "abc" {
		t.Errorf("key without prefix = %q", got)
	}

	s = &Store{prefix: "attachments"}
	if got := s.key("abc"); got != "attachments/abc" {
		t.Errorf("key with prefix = %q", got)
	}
}

// TestS3Store_RoundTrip runs against a live S3-compatible endpoint and is
// skipped unless ORTHANC_S3_TEST_BUCKET is set (e.g. a local MinIO).
func TestS3Store_RoundTrip(t *testing.T) {
	bucket := os.Getenv("ORTHANC_S3_TEST_BUCKET")
	if bucket == "" {
		t.Skip("ORTHANC_S3_TEST_BUCKET not set; skipping live S3 test")
	}

	ctx := context.Background()
	store, err := New(ctx, Config{
		Bucket:          bucket,
		Prefix:          "orthanc-test",
		Endpoint:        os.Getenv("ORTHANC_S3_TEST_ENDPOINT"),
		AccessKeyID:     os.Getenv("ORTHANC_S3_TEST_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("ORTHANC_S3_TEST_SECRET_KEY"),
		UsePathStyle:    true,
	})
	if err != nil {
		t.Fatalf("new s3 store: %v", err)
	}

	data := []byte("s3 attachment payload")
	uid, err := store.Create(ctx, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer store.Remove(ctx, uid)

	rc, err := store.Read(ctx, uid)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	got, _ := io.ReadAll(rc)
	_ = rc.Close()
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: %q", got)
	}

	size, err := store.Size(ctx, uid)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size != int64(len(data)) {
		t.Fatalf("size = %d, want %d", size, len(data))
	}
}
