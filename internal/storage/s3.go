package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Store keeps uploads in a bucket under the same YYYY/MM keys as the
// local store. URLs point at the CDN when one is configured.
type S3Store struct {
	svc      *s3.S3
	uploader *s3manager.Uploader
	bucket   string
	baseURL  string
}

func NewS3Store(bucket, region, cdnURL string) (*S3Store, error) {
	if bucket == "" || region == "" {
		return nil, fmt.Errorf("S3_BUCKET and S3_REGION are required when USE_S3 is set")
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(cdnURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &S3Store{
		svc:      s3.New(sess),
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
		baseURL:  base,
	}, nil
}

func (s *S3Store) Save(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *S3Store) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		return ErrOutside
	}
	_, err := s.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Store) keyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return "", false
	}
	key := strings.TrimPrefix(url, s.baseURL+"/")
	return key, key != ""
}
