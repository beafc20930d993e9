// Package s3 implements the attachment store on top of an S3-compatible
// object service (AWS S3, MinIO).
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/vinayvenu/orthanc/pkg/storage"
)

// Config options for the S3 store.
type Config struct {
	Region          string // AWS region (default: us-east-1)
	Bucket          string // Bucket holding the attachments
	Prefix          string // Optional key prefix inside the bucket
	AccessKeyID     string // Static credentials; default chain when empty
	SecretAccessKey string
	Endpoint        string // Custom endpoint for S3-compatible services
	UsePathStyle    bool   // Path-style addressing, needed by MinIO
}

// Store is an S3 implementation of storage.Store.
type Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// New creates an S3 attachment store.
func New(ctx context.Context, config Config) (*Store, error) {
	if config.Bucket == "" {
		return nil, errors.New("bucket name is required")
	}
	if config.Region == "" {
		config.Region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.Region),
	}
	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
		}
		o.UsePathStyle = config.UsePathStyle
	})

	return &Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   config.Bucket,
		prefix:   config.Prefix,
	}, nil
}

func (s *Store) key(uid string) string {
	if s.prefix == "" {
		return uid
	}
	return s.prefix + "/" + uid
}

func (s *Store) Create(ctx context.Context, r io.Reader) (string, error) {
	uid := uuid.NewString()

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(uid)),
		Body:   r,
	})
	if err != nil {
		return "", &storage.StoreError{Backend: "s3", UID: uid, Op: "create", Err: err}
	}

	return uid, nil
}

func (s *Store) Read(ctx context.Context, uid string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(uid)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, &storage.StoreError{Backend: "s3", UID: uid, Op: "read", Err: storage.ErrNotFound}
		}
		return nil, &storage.StoreError{Backend: "s3", UID: uid, Op: "read", Err: err}
	}

	return out.Body, nil
}

func (s *Store) Size(ctx context.Context, uid string) (int64, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(uid)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return 0, &storage.StoreError{Backend: "s3", UID: uid, Op: "size", Err: storage.ErrNotFound}
		}
		return 0, &storage.StoreError{Backend: "s3", UID: uid, Op: "size", Err: err}
	}

	return aws.ToInt64(out.ContentLength), nil
}

func (s *Store) Remove(ctx context.Context, uid string) error {
	// DeleteObject succeeds on unknown keys, so probe first to keep the
	// ErrNotFound contract.
	if _, err := s.Size(ctx, uid); err != nil {
		return &storage.StoreError{Backend: "s3", UID: uid, Op: "remove", Err: errors.Unwrap(err)}
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(uid)),
	})
	if err != nil {
		return &storage.StoreError{Backend: "s3", UID: uid, Op: "remove", Err: err}
	}

	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix + "/")
	}

	uids := make([]string, 0)
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &storage.StoreError{Backend: "s3", Op: "list", Err: err}
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if s.prefix != "" {
				key = key[len(s.prefix)+1:]
			}
			uids = append(uids, key)
		}
	}

	return uids, nil
}

func (s *Store) Clear(ctx context.Context) error {
	uids, err := s.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, uid := range uids {
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(s.key(uid)),
		})
		if err != nil {
			return &storage.StoreError{Backend: "s3", UID: uid, Op: "clear", Err: err}
		}
	}

	return nil
}
