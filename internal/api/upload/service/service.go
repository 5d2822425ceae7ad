package uploadService

import (
	uploads "BlogGolang/internal/api/upload"
	contextPkg "BlogGolang/pkg/context"
	"BlogGolang/pkg/s3"
	"BlogGolang/pkg/utils"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IUploadService interface {
	SignUpload(ctx context.Context, req uploads.SignUploadRequest) (uploads.SignUploadResponse, error)
	SignDownload(ctx context.Context, key string) (uploads.SignDownloadResponse, error)
}

type uploadService struct {
	log      *logrus.Logger
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func NewUploadService(
	log *logrus.Logger,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IUploadService {
	return &uploadService{
		log:      log,
		s3Client: s3Client,
		utils:    utils,
	}
}

// SignUpload mints a bucket key for the file and returns a pre-signed PUT
// URL for it. The client uploads directly; the key is what gets stored on
// the blog afterwards.
func (s *uploadService) SignUpload(ctx context.Context, req uploads.SignUploadRequest) (uploads.SignUploadResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(req.ContentType) == "" {
		return uploads.SignUploadResponse{}, uploads.ErrContentTypeRequired
	}

	key := s.utils.GenerateFileName(req.ContentType, req.FileName)

	url, err := s.s3Client.SignedPutURL(req.ContentType, key)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"content_type": req.ContentType,
			"error":        err.Error(),
		}).Error("Failed to presign upload URL")
		return uploads.SignUploadResponse{}, uploads.ErrSignUploadURL
	}

	return uploads.SignUploadResponse{
		URL: url,
		Key: key,
	}, nil
}

// SignDownload returns a time-limited GET URL for an object already in the
// bucket, so the frontend can render private media without the server
// proxying bytes.
func (s *uploadService) SignDownload(ctx context.Context, key string) (uploads.SignDownloadResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	key = strings.TrimSpace(key)
	if key == "" {
		return uploads.SignDownloadResponse{}, uploads.ErrFileKeyRequired
	}

	url, err := s.s3Client.SignedGetURL(key)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"error":      err.Error(),
		}).Error("Failed to presign download URL")
		return uploads.SignDownloadResponse{}, uploads.ErrSignDownloadURL
	}

	return uploads.SignDownloadResponse{
		URL: url,
		Key: key,
	}, nil
}
