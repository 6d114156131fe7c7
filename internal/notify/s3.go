// Package notify delivers finished reports to S3, Slack and SNS.
// Every sink skips itself when its destination is not configured; the
// caller decides what a delivery failure means.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// S3API defines the S3 operations used by the uploader.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader uploads the HTML report to object storage.
type S3Uploader struct {
	client S3API
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3Uploader creates an uploader. An empty bucket disables it.
func NewS3Uploader(client S3API, bucket, prefix string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, prefix: prefix, now: time.Now}
}

// Upload stores the HTML report and returns its s3:// location.
// Returns an empty location when no bucket is configured.
func (u *S3Uploader) Upload(ctx context.Context, html string) (string, error) {
	if u.bucket == "" {
		log.Warn().Msg("report bucket not set, skipping S3 upload")
		return "", nil
	}

	key := fmt.Sprintf("%s/report-%s.html", u.prefix, u.now().UTC().Format("2006-01-02-15-04-05"))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(html),
		ContentType: aws.String("text/html"),
	})
	if err != nil {
		return "", fmt.Errorf("upload report: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", u.bucket, key), nil
}
