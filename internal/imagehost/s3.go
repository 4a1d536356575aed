package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	defaultS3Region       = "us-east-1"
	defaultS3ConnAttempts = 5
	defaultS3ConnTimeout  = time.Second
)

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	// PublicURL is the base under which objects of Bucket are reachable.
	PublicURL string
}

// S3API is the subset of *s3.Client used by the S3 host.
type S3API interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var _ S3API = (*s3.Client)(nil)

// S3 stores images in an S3-compatible bucket. The public id of an asset is
// its object key.
type S3 struct {
	client    S3API
	bucket    string
	publicURL string
}

var _ Host = (*S3)(nil)

func NewS3(client S3API, bucket, publicURL string) *S3 {
	return &S3{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// NewS3Client builds an S3 client and waits until the bucket is reachable.
func NewS3Client(ctx context.Context, conf S3Config, logger *slog.Logger) (*s3.Client, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	region := conf.Region
	if region == "" {
		region = defaultS3Region
	}
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AccessKey, conf.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
	})

	for attempt := 1; ; attempt++ {
		_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(conf.Bucket)})
		if err == nil {
			return client, nil
		}
		if attempt == defaultS3ConnAttempts {
			return nil, fmt.Errorf("reaching bucket %q: %w", conf.Bucket, err)
		}
		logger.WarnContext(ctx, "bucket not reachable, retrying",
			slog.Int("attempts_left", defaultS3ConnAttempts-attempt), slog.Any("error", err))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(defaultS3ConnTimeout):
		}
	}
}

func objectKey(folder, id, suffix string) string {
	return path.Join(folder, id+suffix)
}

func (s *S3) objectURL(key string) string {
	return s.publicURL + "/" + key
}

func (s *S3) Upload(ctx context.Context, upload UploadRequest) (Asset, error) {
	key := objectKey(upload.Folder, upload.ID, upload.File.Suffix)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(upload.File.Data),
		ContentType:   aws.String(upload.File.ContentType),
		ContentLength: aws.Int64(int64(len(upload.File.Data))),
	})
	if err != nil {
		return Asset{}, fmt.Errorf("putting object %q: %w", key, err)
	}
	return Asset{
		URL:      s.objectURL(key),
		PublicID: key,
	}, nil
}

func (s *S3) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("deleting object %q: %w", publicID, err)
	}
	return nil
}
