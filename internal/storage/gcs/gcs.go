package gcs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/aaravmahajanofficial/shopfront/internal/api/middleware"
	"github.com/aaravmahajanofficial/shopfront/internal/config"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	imagestore "github.com/aaravmahajanofficial/shopfront/internal/storage"
	"github.com/aaravmahajanofficial/shopfront/internal/utils"
	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/api/option"
)

// ImageStore uploads product images to a single bucket.
//
// Objects are expected to be publicly readable through bucket-level IAM, so no
// per-object ACL is set.
type ImageStore struct {
	client        *storage.Client
	bucket        string
	folder        string
	publicBaseURL string
	now           func() time.Time
}

func New(ctx context.Context, cfg config.Storage, opts ...option.ClientOption) (*ImageStore, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("gcs: bucket is empty")
	}

	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: failed to create storage client: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

func NewWithClient(client *storage.Client, cfg config.Storage) *ImageStore {
	baseURL := strings.TrimSpace(cfg.PublicBaseURL)
	if baseURL == "" {
		baseURL = "https://storage.googleapis.com"
	}

	return &ImageStore{
		client:        client,
		bucket:        strings.TrimSpace(cfg.Bucket),
		folder:        cfg.Folder,
		publicBaseURL: baseURL,
		now:           time.Now,
	}
}

// Upload sniffs the payload, rejects anything that is not an image and writes
// the object. The returned URL is stable for the lifetime of the object.
func (s *ImageStore) Upload(ctx context.Context, file *models.ImageFile) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", imagestore.ErrNotImage
	}

	mt := mimetype.Detect(file.Data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", imagestore.ErrNotImage, mt.String())
	}

	if s.client == nil {
		return "", errors.New("gcs: storage client is nil")
	}

	logger := middleware.LoggerFromContext(ctx)

	object := imagestore.ObjectName(s.folder, file.Filename, mt.Extension(), s.now())

	uploadCtx, cancel := utils.WithUploadTimeout(ctx)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(object).NewWriter(uploadCtx)
	w.ContentType = mt.String()
	w.CacheControl = "public, max-age=31536000"

	if _, err := w.Write(file.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs: write %s: %w", object, err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs: close %s: %w", object, err)
	}

	logger.Info("Image uploaded", slog.String("bucket", s.bucket), slog.String("object", object), slog.String("contentType", mt.String()))

	return imagestore.PublicURL(s.publicBaseURL, s.bucket, object), nil
}

// Ping reads the bucket metadata, which fails when the bucket is missing or
// the credentials lack access.
func (s *ImageStore) Ping(ctx context.Context) error {
	if s.client == nil {
		return errors.New("gcs: storage client is nil")
	}

	if _, err := s.client.Bucket(s.bucket).Attrs(ctx); err != nil {
		return fmt.Errorf("gcs: bucket %s: %w", s.bucket, err)
	}

	return nil
}

func (s *ImageStore) Close() error {
	if s.client == nil {
		return nil
	}

	return s.client.Close()
}
