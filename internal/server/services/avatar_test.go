package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/memorizer/internal/server/config"
)

func newAvatarService() *AvatarService {
	return NewAvatarService(&sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "avatars",
	})
}

func stubPresignPlumbing(t *testing.T) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
}

func TestGetPresignClient_AppliesEndpoint(t *testing.T) {
	svc := newAvatarService()
	stubPresignPlumbing(t)

	var capturedBaseEndpoint string
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint != nil {
			capturedBaseEndpoint = *opts.BaseEndpoint
		}
		return &s3.Client{}
	}

	pc, err := svc.getPresignClient()
	if err != nil {
		t.Fatalf("getPresignClient error: %v", err)
	}
	if pc == nil {
		t.Fatal("nil presign client")
	}
	if capturedBaseEndpoint != "http://127.0.0.1:9000" {
		t.Fatalf("BaseEndpoint mismatch: %q", capturedBaseEndpoint)
	}
}

func TestGetPresignClient_LoadError(t *testing.T) {
	svc := newAvatarService()
	stubPresignPlumbing(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	if _, err := svc.getPresignClient(); err == nil || err.Error() != "load-fail" {
		t.Fatalf("expected load-fail, got %v", err)
	}
}

func TestUploadURL(t *testing.T) {
	svc := newAvatarService()
	stubPresignPlumbing(t)

	var capturedBucket, capturedKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		capturedBucket = *in.Bucket
		capturedKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "https://example.com/put"}, nil
	}

	key, url, err := svc.UploadURL(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("UploadURL error: %v", err)
	}
	if url != "https://example.com/put" {
		t.Fatalf("unexpected url: %q", url)
	}
	if capturedBucket != "avatars" {
		t.Fatalf("unexpected bucket: %q", capturedBucket)
	}
	if key != capturedKey || !strings.HasPrefix(key, "avatars/u-1/") {
		t.Fatalf("unexpected key: %q (presigned for %q)", key, capturedKey)
	}
}

func TestUploadURL_PresignError(t *testing.T) {
	svc := newAvatarService()
	stubPresignPlumbing(t)

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}

	if _, _, err := svc.UploadURL(context.Background(), "u-1"); err == nil || err.Error() != "presign-fail" {
		t.Fatalf("expected presign-fail, got %v", err)
	}
}

func TestDownloadURL(t *testing.T) {
	svc := newAvatarService()
	stubPresignPlumbing(t)

	var capturedKey string
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		capturedKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "https://example.com/get"}, nil
	}

	url, err := svc.DownloadURL(context.Background(), "avatars/u-1/2026/9/abc")
	if err != nil {
		t.Fatalf("DownloadURL error: %v", err)
	}
	if url != "https://example.com/get" {
		t.Fatalf("unexpected url: %q", url)
	}
	if capturedKey != "avatars/u-1/2026/9/abc" {
		t.Fatalf("unexpected key: %q", capturedKey)
	}
}
