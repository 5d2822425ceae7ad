package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/entity"
	"BlogGolang/pkg/s3"
	"BlogGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error)
	GetBlogs(ctx context.Context, filter blogs.BlogFilter) (*blogs.BlogListResponse, error)
	GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest) (entity.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) (entity.Blog, error)
	AddTagsToBlog(ctx context.Context, blogID string, tagNames []string) ([]string, error)
	RemoveTagsFromBlog(ctx context.Context, blogID string, tagNames []string) ([]string, error)
	GetAllTags(ctx context.Context) ([]entity.Tag, error)
	AddContentToBlog(ctx context.Context, blogID string, req blogs.ContentRequest) (entity.Content, error)
	UpdateContent(ctx context.Context, contentID string, req blogs.UpdateContentRequest) (entity.Content, error)
	DeleteContent(ctx context.Context, contentID string) error
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogRepository.Repository
	s3Client  s3.ItfS3
	utils     utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		s3Client:  s3Client,
		utils:     utils,
	}
}
