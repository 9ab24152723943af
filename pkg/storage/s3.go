package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	internalConfig "github.com/bestmoments/bestmoments-backend/internal/config"
)

type S3Storage struct {
	client           *s3.Client
	bucket           string
	cloudFrontDomain string
}

func NewS3Storage(cfg *internalConfig.Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(cfg.S3.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client:           s3.NewFromConfig(awsCfg),
		bucket:           cfg.S3.Bucket,
		cloudFrontDomain: cfg.S3.CloudFrontDomain,
	}, nil
}

// Upload stores the object and returns its public URL.
func (s *S3Storage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}

	if _, err := s.client.DeleteObject(ctx, input); err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

func (s *S3Storage) publicURL(key string) string {
	if s.cloudFrontDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cloudFrontDomain, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

// GenerateKey builds an object key as {folder}/{owner}/{timestamp}_{suffix}{ext}.
// The random suffix keeps concurrent uploads for the same owner from colliding.
func GenerateKey(folder, owner, filename string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	suffix := uuid.NewString()[:8]
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s/%s/%s_%s%s", folder, owner, timestamp, suffix, ext)
}
