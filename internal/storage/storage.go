package storage

import (
	"context"
	"errors"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/shopfront/internal/models"
	"github.com/google/uuid"
)

// ErrNotImage is returned when an upload does not sniff as an image.
var ErrNotImage = errors.New("uploaded file is not an image")

// ImageStore persists product images and returns a stable public URL.
type ImageStore interface {
	Upload(ctx context.Context, file *models.ImageFile) (string, error)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ObjectName builds a collision-free object path under folder, keeping a readable
// slug of the original filename and the sniffed extension.
func ObjectName(folder, filename, ext string, now time.Time) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	base = strings.Trim(unsafeChars.ReplaceAllString(base, "-"), "-.")
	if base == "" || base == "/" {
		base = "image"
	}

	if len(base) > 64 {
		base = base[:64]
	}

	name := now.UTC().Format("20060102T150405") + "-" + uuid.NewString()[:8] + "-" + strings.ToLower(base) + ext

	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}

	return folder + "/" + name
}

// PublicURL joins the public base, bucket and object path.
func PublicURL(baseURL, bucket, object string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.Trim(bucket, "/") + "/" + object
}
