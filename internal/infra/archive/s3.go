package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type putter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver grava as reservas apagadas pelo reaper como um JSON por execução.
type S3Archiver struct {
	client putter
	bucket string
	prefix string
}

func NewS3Archiver(cfg Config) (*S3Archiver, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("archive: bucket is required")
	}

	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		)
	}
	if cfg.Endpoint != "" {
		// MinIO e afins
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Archiver{
		client: s3.New(opts),
		bucket: cfg.Bucket,
		prefix: "reaped",
	}, nil
}

type archivedRun struct {
	RunID        string               `json:"run_id"`
	AsOf         string               `json:"as_of"`
	ArchivedAt   time.Time            `json:"archived_at"`
	Count        int                  `json:"count"`
	Reservations []models.Reservation `json:"reservations"`
}

func (a *S3Archiver) key(runID string, asOf time.Time) string {
	return fmt.Sprintf("%s/%s/%s.json", a.prefix, asOf.Format("2006-01-02"), runID)
}

func (a *S3Archiver) Archive(
	ctx context.Context,
	runID string,
	asOf time.Time,
	rows []models.Reservation,
) (string, error) {

	body, err := json.Marshal(archivedRun{
		RunID:        runID,
		AsOf:         asOf.Format("2006-01-02"),
		ArchivedAt:   time.Now().UTC(),
		Count:        len(rows),
		Reservations: rows,
	})
	if err != nil {
		return "", fmt.Errorf("encode archive: %w", err)
	}

	key := a.key(runID, asOf)
	if _, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", a.bucket, key, err)
	}

	return key, nil
}
