package ioexport

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gnames/geodb/pkg/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	defaultRegion = "us-east-1"
	sqliteMIME    = "application/vnd.sqlite3"
)

// checkS3 returns an error if S3 settings are not enough for upload.
func checkS3(cfg config.S3Config) error {
	switch {
	case strings.TrimSpace(cfg.Endpoint) == "":
		return S3ConfigError("endpoint")
	case strings.TrimSpace(cfg.Bucket) == "":
		return S3ConfigError("bucket")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return S3ConfigError("credentials")
	}
	return nil
}

func newS3Client(cfg config.S3Config) (*minio.Client, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	return minio.New(strings.TrimSpace(cfg.Endpoint), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
}

// upload puts the file to the bucket under its base name. The bucket
// is created when it does not exist.
func upload(ctx context.Context, cfg config.S3Config, path string) (string, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	key := filepath.Base(path)
	if err := checkS3(cfg); err != nil {
		return "", err
	}

	client, err := newS3Client(cfg)
	if err != nil {
		return "", S3UploadError(bucket, key, err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return "", S3UploadError(bucket, key, err)
	}
	if !exists {
		slog.Info("Creating bucket", "bucket", bucket)
		err = client.MakeBucket(ctx, bucket,
			minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return "", S3UploadError(bucket, key, err)
		}
	}

	info, err := client.FPutObject(ctx, bucket, key, path,
		minio.PutObjectOptions{ContentType: sqliteMIME})
	if err != nil {
		return "", S3UploadError(bucket, key, err)
	}
	slog.Info("Uploaded SQLite file",
		"bucket", info.Bucket, "key", info.Key, "size", info.Size)
	return bucket + "/" + info.Key, nil
}
