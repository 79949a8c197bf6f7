package services

import (
  "context"
  "fmt"
  "io"
  "time"

  "cloud.google.com/go/storage"
  "google.golang.org/api/option"
  "gorm.io/gorm"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/utils"
)

type BucketService interface {
  UploadFile(ctx context.Context, tx *gorm.DB, key string, reader io.Reader) error
  GetPublicURL(key string) string
}

type bucketService struct {
  log         *logger.Logger
  client      *storage.Client
  bucketName  string
}

func NewBucketService(log *logger.Logger) (BucketService, error) {
  serviceLog := log.With("service", "BucketService")

  bucketName := utils.GetEnv("GCS_BUCKET_NAME", "", serviceLog)
  if bucketName == "" {
    serviceLog.Warn("GCS_BUCKET_NAME is not set, Cannot proceed. Returning error.")
    return nil, fmt.Errorf("GCS_BUCKET_NAME is not set")
  }

  var opts []option.ClientOption
  credsFile := utils.GetEnv("GCS_CREDENTIALS_FILE", "", serviceLog)
  if credsFile != "" {
    opts = append(opts, option.WithCredentialsFile(credsFile))
  }

  ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
  defer cancel()
  client, err := storage.NewClient(ctx, opts...)
  if err != nil {
    serviceLog.Warn("Failed to create GCS client, Cannot proceed. Returning error.", "error", err)
    return nil, fmt.Errorf("failed to create GCS client: %w", err)
  }

  return &bucketService{
    log:        serviceLog,
    client:     client,
    bucketName: bucketName,
  }, nil
}

// UploadFile streams an object into the bucket under key. The tx parameter
// keeps the signature uniform with the repos so callers inside a database
// transaction can pass it through.
func (bs *bucketService) UploadFile(ctx context.Context, tx *gorm.DB, key string, reader io.Reader) error {
  writer := bs.client.Bucket(bs.bucketName).Object(key).NewWriter(ctx)
  writer.ContentType = "image/png"
  if _, err := io.Copy(writer, reader); err != nil {
    writer.Close()
    bs.log.Warn("Failed to write object to bucket, Cannot proceed. Returning error.", "error", err, "key", key)
    return fmt.Errorf("failed to write object '%s' to bucket: %w", key, err)
  }
  if err := writer.Close(); err != nil {
    bs.log.Warn("Failed to finalize object upload, Cannot proceed. Returning error.", "error", err, "key", key)
    return fmt.Errorf("failed to finalize object '%s' upload: %w", key, err)
  }
  return nil
}

func (bs *bucketService) GetPublicURL(key string) string {
  return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bs.bucketName, key)
}
