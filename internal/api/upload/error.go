package uploads

import "BlogGolang/pkg/response"

var (
	ErrContentTypeRequired = response.NewError(400, "contentType is required")
	ErrFileKeyRequired     = response.NewError(400, "file key is required")
	ErrSignUploadURL       = response.NewError(500, "failed to generate upload URL")
	ErrSignDownloadURL     = response.NewError(500, "failed to generate download URL")
)
