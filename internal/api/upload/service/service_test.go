package uploadService

import (
	uploads "BlogGolang/internal/api/upload"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubS3 struct {
	signedURL string
	signErr   error

	seenContentType string
	seenKey         string
}

func (s *stubS3) SignedPutURL(contentType, key string) (string, error) {
	s.seenContentType = contentType
	s.seenKey = key
	return s.signedURL, s.signErr
}

func (s *stubS3) SignedGetURL(key string) (string, error) {
	s.seenKey = key
	return s.signedURL, s.signErr
}

func (s *stubS3) DeleteFiles(_ []string) error {
	return nil
}

type stubUtils struct{}

func (u *stubUtils) NewULIDFromTimestamp(_ time.Time) (string, error) {
	return "id-1", nil
}

func (u *stubUtils) GenerateFileName(contentType, originalName string) string {
	return "image-1700000000000.png"
}

func newTestService(s3Stub *stubS3) IUploadService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewUploadService(logger, s3Stub, &stubUtils{})
}

func TestSignUpload(t *testing.T) {
	s3Stub := &stubS3{signedURL: "https://bucket.example.com/blog-images/image-1700000000000.png?sig=abc"}
	service := newTestService(s3Stub)

	result, err := service.SignUpload(context.Background(), uploads.SignUploadRequest{
		ContentType: "image/png",
		FileName:    "photo.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "image/png", s3Stub.seenContentType)
	assert.Equal(t, "image-1700000000000.png", s3Stub.seenKey)
	assert.Equal(t, s3Stub.signedURL, result.URL)
	assert.Equal(t, "image-1700000000000.png", result.Key)
}

func TestSignUploadRequiresContentType(t *testing.T) {
	s3Stub := &stubS3{}
	service := newTestService(s3Stub)

	_, err := service.SignUpload(context.Background(), uploads.SignUploadRequest{ContentType: "  "})

	assert.ErrorIs(t, err, uploads.ErrContentTypeRequired)
	assert.Empty(t, s3Stub.seenKey, "no key should be minted for invalid input")
}

func TestSignUploadWrapsPresignFailure(t *testing.T) {
	s3Stub := &stubS3{signErr: errors.New("credentials expired")}
	service := newTestService(s3Stub)

	_, err := service.SignUpload(context.Background(), uploads.SignUploadRequest{ContentType: "image/jpeg"})

	assert.ErrorIs(t, err, uploads.ErrSignUploadURL)
}

func TestSignDownload(t *testing.T) {
	s3Stub := &stubS3{signedURL: "https://bucket.example.com/blog-images/image-1.jpg?sig=abc"}
	service := newTestService(s3Stub)

	result, err := service.SignDownload(context.Background(), "image-1.jpg")

	require.NoError(t, err)
	assert.Equal(t, "image-1.jpg", s3Stub.seenKey)
	assert.Equal(t, s3Stub.signedURL, result.URL)
	assert.Equal(t, "image-1.jpg", result.Key)
}

func TestSignDownloadRequiresKey(t *testing.T) {
	s3Stub := &stubS3{}
	service := newTestService(s3Stub)

	_, err := service.SignDownload(context.Background(), "   ")

	assert.ErrorIs(t, err, uploads.ErrFileKeyRequired)
	assert.Empty(t, s3Stub.seenKey)
}

func TestSignDownloadWrapsPresignFailure(t *testing.T) {
	s3Stub := &stubS3{signErr: errors.New("credentials expired")}
	service := newTestService(s3Stub)

	_, err := service.SignDownload(context.Background(), "image-1.jpg")

	assert.ErrorIs(t, err, uploads.ErrSignDownloadURL)
}
