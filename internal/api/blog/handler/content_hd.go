package blogHandler

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"BlogGolang/pkg/handlerUtil"
	"BlogGolang/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BlogsHandler) AddContentToBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing add content request")

	blogID := ctx.Params("id")
	if blogID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog ID is required"), ctx.Path())
	}

	var req blogs.ContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := validateContentBlocks([]blogs.ContentRequest{req}); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_content")
	}

	content, err := h.blogsService.AddContentToBlog(c, blogID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_content")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated,
			"Content added successfully", blogs.NewContentResponse(content))
	}
}

func (h *BlogsHandler) UpdateContent(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update content request")

	contentID := ctx.Params("contentId")
	if contentID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("content ID is required"), ctx.Path())
	}

	var req blogs.UpdateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if req.Type != "" && !entity.ContentType(req.Type).Valid() {
		return errHandler.Handle(ctx, requestID, blogs.ErrInvalidContentType, ctx.Path(), "update_content")
	}

	content, err := h.blogsService.UpdateContent(c, contentID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_content")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK,
			"Content updated successfully", blogs.NewContentResponse(content))
	}
}

func (h *BlogsHandler) DeleteContent(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete content request")

	contentID := ctx.Params("contentId")
	if contentID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("content ID is required"), ctx.Path())
	}

	if err := h.blogsService.DeleteContent(c, contentID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_content")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK,
			"Content deleted successfully", nil)
	}
}
