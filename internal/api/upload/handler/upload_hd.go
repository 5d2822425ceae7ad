package uploadHandler

import (
	uploads "BlogGolang/internal/api/upload"
	contextPkg "BlogGolang/pkg/context"
	"BlogGolang/pkg/handlerUtil"
	"BlogGolang/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *UploadHandler) SignUpload(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing sign upload request")

	var req uploads.SignUploadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.uploadService.SignUpload(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "sign_upload")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK,
			"Upload URL generated successfully", result)
	}
}

func (h *UploadHandler) SignDownload(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing sign download request")

	key := ctx.Params("key")
	if key == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("file key is required"), ctx.Path())
	}

	result, err := h.uploadService.SignDownload(c, key)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "sign_download")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK,
			"Download URL generated successfully", result)
	}
}
