package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/wartapedia/portal-berita/internal/pkg/env"
)

// S3Mirror copies stored blobs to an S3-compatible bucket. It is an
// optional off-site copy of the public uploads, not the source of truth.
type S3Mirror struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3MirrorFromEnv returns a mirror client when S3_MIRROR_ENABLED is
// true, nil otherwise.
func NewS3MirrorFromEnv() *S3Mirror {
	if env.GetEnv("S3_MIRROR_ENABLED", "false") != "true" {
		return nil
	}

	region := env.GetEnv("S3_REGION", "us-east-1")
	endpoint := env.GetEnv("S3_ENDPOINT_URL", "")
	accessKey := env.GetEnv("S3_ACCESS_KEY_ID", "")
	secretKey := env.GetEnv("S3_SECRET_ACCESS_KEY", "")
	bucket := env.GetEnv("S3_BUCKET_NAME", "")
	if bucket == "" || accessKey == "" || secretKey == "" {
		log.Print("[storage] S3 mirror enabled but not fully configured, skipping")
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		log.Printf("[storage] failed to load AWS config for S3 mirror: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			// Path-style is required by most S3-compatible providers.
			o.UsePathStyle = true
		}
	})

	return &S3Mirror{
		client: client,
		bucket: bucket,
		prefix: env.GetEnv("S3_KEY_PREFIX", "uploads"),
	}
}

// Upload copies the local file at fullPath to the bucket under relPath.
func (m *S3Mirror) Upload(relPath, fullPath string) error {
	f, err := os.Open(fullPath)
	if err != nil {
		return fmt.Errorf("failed to open blob for mirroring: %w", err)
	}
	defer f.Close()

	_, err = m.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(m.key(relPath)),
		Body:   f,
	})
	return err
}

// Delete removes the mirrored object for relPath.
func (m *S3Mirror) Delete(relPath string) error {
	_, err := m.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(m.key(relPath)),
	})
	return err
}

func (m *S3Mirror) key(relPath string) string {
	return path.Join(m.prefix, relPath)
}
