package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/platform/config"
)

const imageKeyPrefix = "images/"

// objectAPI is the slice of *s3.Client the store needs.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store keeps images in an S3-compatible bucket under the images/ prefix.
type S3Store struct {
	api    objectAPI
	bucket string
}

// NewS3Store builds a path-style client with static credentials, which is
// what MinIO and SeaweedFS expect.
func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.S3Endpoint)
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String(endpoint)
	})
	return &S3Store{api: client, bucket: cfg.S3Bucket}, nil
}

func (s *S3Store) Save(ctx context.Context, filename string, upload domain.ImageUpload) error {
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(imageKeyPrefix + filename),
		Body:        upload.Content,
		ContentType: aws.String(upload.ContentType),
	}
	if upload.Size > 0 {
		in.ContentLength = aws.Int64(upload.Size)
	}
	if _, err := s.api.PutObject(ctx, in); err != nil {
		return fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	return nil
}

// Delete succeeds for keys that do not exist, as S3 itself does.
func (s *S3Store) Delete(ctx context.Context, filename string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(imageKeyPrefix + filename),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", filename, err)
	}
	return nil
}

func (s *S3Store) Open(ctx context.Context, filename string) (*domain.StoredObject, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(imageKeyPrefix + filename),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", filename, err)
	}
	return &domain.StoredObject{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}
