package services

import (
	"context"
	"fmt"
	"time"

	sc "github.com/dmitrijs2005/memorizer/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for testing the AWS SDK plumbing without network access.
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
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// AvatarService hands out presigned URLs so browsers upload profile images
// straight to the S3-compatible backend; the server stores only the key.
type AvatarService struct {
	config *sc.Config
}

func NewAvatarService(cfg *sc.Config) *AvatarService {
	return &AvatarService{config: cfg}
}

func avatarStorageKey(userID string) string {
	d := time.Now()
	return fmt.Sprintf("avatars/%s/%d/%d/%v", userID, d.Year(), d.Month(), uuid.New())
}

func (s *AvatarService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
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
	})

	return newS3PresignClient(client), nil
}

// UploadURL returns a storage key and a presigned PUT URL for it, valid for
// 15 minutes.
func (s *AvatarService) UploadURL(ctx context.Context, userID string) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := avatarStorageKey(userID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// DownloadURL returns a presigned GET URL for a stored avatar key, valid
// for 15 minutes.
func (s *AvatarService) DownloadURL(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
