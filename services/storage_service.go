package services

import (
	"bytes"
	"context"
	"fmt"
	"giftingstudio_server/structs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var (
	s3Client *s3.Client
	s3Once   sync.Once
	s3Err    error
)

// StorageService uploads product and review imagery to S3-compatible object
// storage and hands back public URLs. Works with AWS S3 as well as MinIO,
// Spaces and R2 via a custom endpoint.
type StorageService struct {
	logger  *gecho.Logger
	cfg     *structs.Config
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewStorageService(logger *gecho.Logger, cfg *structs.Config) (*StorageService, error) {
	client, err := getS3Client(cfg)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(cfg.Storage.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Storage.Bucket, cfg.Storage.Region)
	}

	return &StorageService{
		logger:  logger,
		cfg:     cfg,
		client:  client,
		bucket:  cfg.Storage.Bucket,
		baseURL: baseURL,
	}, nil
}

func getS3Client(cfg *structs.Config) (*s3.Client, error) {
	s3Once.Do(func() {
		if cfg.Storage.Bucket == "" {
			s3Err = fmt.Errorf("storage: S3_BUCKET is not configured")
			return
		}

		opts := []func(*awscfg.LoadOptions) error{
			awscfg.WithRegion(cfg.Storage.Region),
		}

		// Static credentials (required for MinIO / R2 / Spaces)
		if cfg.Storage.Key != "" && cfg.Storage.Secret != "" {
			opts = append(opts, awscfg.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.Storage.Key, cfg.Storage.Secret, ""),
			))
		}

		awsConfig, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
		if err != nil {
			s3Err = fmt.Errorf("storage: load config: %w", err)
			return
		}

		clientOpts := []func(*s3.Options){}
		if cfg.Storage.Endpoint != "" {
			clientOpts = append(clientOpts, func(o *s3.Options) {
				o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
				o.UsePathStyle = true // required for MinIO
			})
		}

		s3Client = s3.NewFromConfig(awsConfig, clientOpts...)
	})
	return s3Client, s3Err
}

// UploadImage stores an image under the given folder and returns its public
// URL. The object key is randomized; the original filename only contributes
// its extension.
func (ss *StorageService) UploadImage(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	startTime := time.Now()

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.New().String(), ext)

	_, err := ss.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ss.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		ss.logger.Error("Failed to upload image",
			gecho.Field("error", err),
			gecho.Field("key", key),
		)
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}

	url := ss.URL(key)
	ss.logger.Debug("Image uploaded",
		gecho.Field("key", key),
		gecho.Field("bytes", len(data)),
		gecho.Field("duration", time.Since(startTime)),
	)
	return url, nil
}

// DeleteObject removes an object by key
func (ss *StorageService) DeleteObject(ctx context.Context, key string) error {
	_, err := ss.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(ss.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		ss.logger.Error("Failed to delete object", gecho.Field("error", err), gecho.Field("key", key))
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL for an object key
func (ss *StorageService) URL(key string) string {
	return ss.baseURL + "/" + strings.TrimLeft(key, "/")
}
