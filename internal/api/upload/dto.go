package uploads

type SignUploadRequest struct {
	ContentType string `json:"contentType" validate:"required,max=128"`
	FileName    string `json:"fileName" validate:"omitempty,max=256"`
}

type SignUploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type SignDownloadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
