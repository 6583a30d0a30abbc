package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// transcriptPrefix is the object prefix every archived transcript lives under
const transcriptPrefix = "transcripts/"

// MinIOClient archives raw transcripts in an S3-compatible bucket
type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string // Public URL for generating accessible URLs (e.g., https://minio.example.com)
}

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}

	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket if needed. Transcripts stay private; reads go through presigned URLs.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// TranscriptObjectName returns the object key for a meeting's transcript
func TranscriptObjectName(meetingID string) string {
	return transcriptPrefix + path.Base(meetingID) + ".txt"
}

// ArchiveTranscript stores transcript under transcripts/<meetingID>.txt and returns the object key
func (m *MinIOClient) ArchiveTranscript(ctx context.Context, meetingID, transcript string) (string, error) {
	objectName := TranscriptObjectName(meetingID)
	reader := strings.NewReader(transcript)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, int64(reader.Len()), minio.PutObjectOptions{
		ContentType:  "text/plain; charset=utf-8",
		UserMetadata: map[string]string{"meeting-id": meetingID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload transcript: %w", err)
	}
	return objectName, nil
}

// ReadTranscript returns an archived transcript
func (m *MinIOClient) ReadTranscript(ctx context.Context, meetingID string) (string, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, TranscriptObjectName(meetingID), minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to open transcript: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	return string(data), nil
}

// TranscriptURL returns a presigned download URL, rewritten onto publicURL when one is configured
func (m *MinIOClient) TranscriptURL(ctx context.Context, meetingID string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, TranscriptObjectName(meetingID), expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return rewriteHost(u, m.publicURL), nil
}

// rewriteHost swaps scheme://host of u for publicURL, keeping path and query.
// Used when MinIO sits behind a reverse proxy.
func rewriteHost(u *url.URL, publicURL string) string {
	if publicURL == "" {
		return u.String()
	}
	pathAndQuery := u.EscapedPath()
	if u.RawQuery != "" {
		pathAndQuery += "?" + u.RawQuery
	}
	return publicURL + pathAndQuery
}

// Ping reports whether the bucket is reachable
func (m *MinIOClient) Ping(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", m.bucket)
	}
	return nil
}
