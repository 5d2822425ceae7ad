package utils

import (
	"crypto/rand"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	GenerateFileName(contentType, originalName string) string
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

var mimeToExt = map[string]string{
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

// GenerateFileName derives the canonical storage key for an upload:
// a timestamped name with an extension inferred from the MIME type,
// falling back to the original file's extension, then to jpg.
func (u *utils) GenerateFileName(contentType, originalName string) string {
	timestamp := time.Now().UnixMilli()
	return fmt.Sprintf("image-%d.%s", timestamp, fileExtension(contentType, originalName))
}

func fileExtension(contentType, originalName string) string {
	if ext, ok := mimeToExt[strings.ToLower(contentType)]; ok {
		return ext
	}

	if originalName != "" {
		if ext := strings.TrimPrefix(filepath.Ext(originalName), "."); ext != "" {
			return ext
		}
	}

	return "jpg"
}
