package blogHandler

import (
	blogs "BlogGolang/internal/api/blog"
	contextPkg "BlogGolang/pkg/context"
	"BlogGolang/pkg/handlerUtil"
	"BlogGolang/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BlogsHandler) AddTagsToBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing add tags request")

	blogID := ctx.Params("id")
	if blogID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog ID is required"), ctx.Path())
	}

	var req blogs.TagNamesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	tags, err := h.blogsService.AddTagsToBlog(c, blogID, req.Tags)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_tags")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK,
			"Tags added successfully", blogs.BlogTagsResponse{
				BlogID: blogID,
				Tags:   tags,
			})
	}
}

func (h *BlogsHandler) RemoveTagsFromBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing remove tags request")

	blogID := ctx.Params("id")
	if blogID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog ID is required"), ctx.Path())
	}

	var req blogs.TagNamesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	tags, err := h.blogsService.RemoveTagsFromBlog(c, blogID, req.Tags)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "remove_tags")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK,
			"Tags removed successfully", blogs.BlogTagsResponse{
				BlogID: blogID,
				Tags:   tags,
			})
	}
}

func (h *BlogsHandler) GetAllTags(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all tags request")

	tags, err := h.blogsService.GetAllTags(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_tags")
	}

	response := blogs.TagListResponse{Tags: make([]blogs.TagResponse, 0, len(tags))}
	for _, tag := range tags {
		response.Tags = append(response.Tags, blogs.TagResponse{
			Name:      tag.Name,
			BlogCount: tag.BlogCount,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK,
			"Tags retrieved successfully", response)
	}
}
