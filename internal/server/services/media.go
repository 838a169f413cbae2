package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	sc "github.com/dmitrijs2005/diarykeeper/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MaxPresignBatch bounds the number of URLs handed out per request.
const MaxPresignBatch = 20

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// PresignedUpload is one upload slot: the object key and the URL to PUT to.
type PresignedUpload struct {
	Key string
	URL string
}

type MediaService struct {
	config *sc.Config
	now    func() time.Time
}

func NewMediaService(config *sc.Config) *MediaService {
	return &MediaService{config: config, now: time.Now}
}

// StorageKey builds "{category}/{ownerId}/{yyyy}/{mm}/{dd}/{id}" for t in UTC.
func StorageKey(category, ownerID string, t time.Time, id string) string {
	t = t.UTC()
	return fmt.Sprintf("%s/%s/%04d/%02d/%02d/%s", category, ownerID, t.Year(), int(t.Month()), t.Day(), id)
}

// KeyOwner returns the owner segment of a key made by StorageKey, or "".
func KeyOwner(key string) string {
	parts := strings.Split(key, "/")
	if len(parts) != 6 {
		return ""
	}
	return parts[1]
}

func (s *MediaService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// Presign returns count presigned PUT slots under category for ownerID.
func (s *MediaService) Presign(ctx context.Context, ownerID, category string, count int) ([]PresignedUpload, error) {
	if count <= 0 || count > MaxPresignBatch {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidArgument, MaxPresignBatch)
	}
	if category == "" || strings.Contains(category, "/") {
		return nil, fmt.Errorf("%w: bad category %q", ErrInvalidArgument, category)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("presign client: %w", err)
	}

	bucket := s.config.S3Bucket
	now := s.now()
	out := make([]PresignedUpload, 0, count)
	for range count {
		key := StorageKey(category, ownerID, now, uuid.NewString())
		req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
			Bucket: &bucket,
			Key:    &key,
		}, s3.WithPresignExpires(s.config.PresignExpiry))
		if err != nil {
			return nil, fmt.Errorf("presign %s: %w", key, err)
		}
		out = append(out, PresignedUpload{Key: key, URL: req.URL})
	}
	return out, nil
}
