package uploadHandler

import (
	uploadService "BlogGolang/internal/api/upload/service"
	"BlogGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	uploadService uploadService.IUploadService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	us uploadService.IUploadService,
) *UploadHandler {
	return &UploadHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		uploadService: us,
	}
}

func (h *UploadHandler) Start(srv fiber.Router) {
	uploads := srv.Group("/uploads")

	uploads.Post("/sign", h.SignUpload)
	uploads.Get("/:key", h.SignDownload)
}
