package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"

	appconfig "smart-healthcare-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Store uploads medical record files to an S3 bucket and returns a
// retrievable URL for each object.
type S3Store struct {
	client *s3.Client
	bucket string
	region string
	// endpoint is set for S3-compatible stores; empty means AWS proper
	endpoint string
}

// NewS3Store builds an S3-backed blob store from configuration.
// A non-empty endpoint switches the client to path-style addressing.
func NewS3Store(ctx context.Context, cfg *appconfig.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	opts := s3.Options{
		Region:      awsCfg.Region,
		Credentials: awsCfg.Credentials,
		HTTPClient:  awsCfg.HTTPClient,
	}
	if cfg.Storage.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Store{
		client:   s3.New(opts),
		bucket:   cfg.Storage.Bucket,
		region:   cfg.Storage.Region,
		endpoint: cfg.Storage.Endpoint,
	}, nil
}

// Store uploads the file bytes under a random key and returns the object URL
func (s *S3Store) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	key := uuid.New().String()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	url := s.objectURL(key)
	log.Printf("Uploaded file to blob storage: %s", url)
	return url, nil
}

func (s *S3Store) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
