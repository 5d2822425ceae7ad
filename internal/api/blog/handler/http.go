package blogHandler

import (
	blogsService "BlogGolang/internal/api/blog/service"
	"BlogGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	blogs.Post("/", h.CreateBlog)
	blogs.Get("", h.GetBlogs)

	// Static segments before the ":id" wildcard so fiber never swallows them.
	blogs.Get("/tags", h.GetAllTags)
	blogs.Put("/content/:contentId", h.UpdateContent)
	blogs.Delete("/content/:contentId", h.DeleteContent)

	blogs.Get("/:id", h.GetBlogByID)
	blogs.Put("/:id", h.UpdateBlog)
	blogs.Delete("/:id", h.DeleteBlog)
	blogs.Post("/:id/view", h.IncrementViewCount)
	blogs.Post("/:id/tags", h.AddTagsToBlog)
	blogs.Delete("/:id/tags", h.RemoveTagsFromBlog)
	blogs.Post("/:id/content", h.AddContentToBlog)
}
