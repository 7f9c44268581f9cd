package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStore persists uploaded images and returns opaque storage keys. The
// public site concatenates a CDN base with the key; this package never
// builds display URLs.
type ImageStore interface {
	Put(ctx context.Context, filename, contentType string, body io.Reader) (key string, err error)
}

// S3ImageStore stores images in a single bucket under uploads/.
type S3ImageStore struct {
	client *s3.Client
	bucket string
}

func NewS3ImageStore(ctx context.Context, bucket, region string) (*S3ImageStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3ImageStore{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// Put writes the object and returns its key. Keys are uploads/<uuid><ext>;
// the original filename only contributes its extension.
func (s *S3ImageStore) Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := objectKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return key, nil
}

func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "uploads/" + uuid.NewString() + ext
}
