package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/trainer-manager/internal/config"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

const keyPrefix = "backups/"

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Snapshotter fornece o dataset completo a ser salvo.
type Snapshotter interface {
	Snapshot(ctx context.Context) (*models.Dataset, error)
}

// NewS3Client monta o cliente a partir do config. Com S3_ENDPOINT usa
// path-style (MinIO e compatíveis).
func NewS3Client(cfg *config.Config) *s3.Client {
	opts := s3.Options{
		Region: cfg.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKey, cfg.AWSSecretKey, "",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

type S3Uploader struct {
	client ObjectPutter
	bucket string
	clock  timezone.Clock
}

func NewS3Uploader(client ObjectPutter, bucket string, clock timezone.Clock) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, clock: clock}
}

// Upload grava o dataset como JSON em backups/<data>-<uuid>.json e devolve a chave.
func (u *S3Uploader) Upload(ctx context.Context, ds *models.Dataset) (string, error) {
	raw, err := json.Marshal(ds)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s%s-%s.json", keyPrefix, timezone.Today(u.clock()), uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}

// Backup tira o snapshot e envia.
func (u *S3Uploader) Backup(ctx context.Context, src Snapshotter) (string, error) {
	ds, err := src.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return u.Upload(ctx, ds)
}
