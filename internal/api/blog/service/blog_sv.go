package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// CreateBlog persists the whole aggregate in one transaction: the blog row,
// its content blocks and their media in input order, the tag vocabulary and
// the associations. Nothing survives a mid-sequence failure.
func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	// Fail fast, before a transaction is even opened.
	if strings.TrimSpace(req.Title) == "" {
		return entity.Blog{}, blogs.ErrTitleRequired
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, err
	}
	defer repo.Rollback()

	now := time.Now()

	blogID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Blog{}, err
	}

	blog := entity.Blog{
		ID:              blogID,
		Title:           req.Title,
		CoverImage:      req.CoverImage,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		ReadTime:        req.ReadTime,
		ViewCount:       0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		return entity.Blog{}, err
	}

	for _, block := range req.Content {
		if _, err := s.insertContentBlock(ctx, repo, blogID, block, now); err != nil {
			return entity.Blog{}, err
		}
	}

	tagNames := normalizeTagNames(req.Tags)
	for _, name := range tagNames {
		if err := repo.Tags.UpsertTag(ctx, name); err != nil {
			return entity.Blog{}, err
		}
	}

	if err := repo.Tags.CreateBlogTags(ctx, blogID, tagNames); err != nil {
		return entity.Blog{}, err
	}

	aggregate, err := s.loadAggregate(ctx, repo, blogID)
	if err != nil {
		return entity.Blog{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Blog{}, blogs.ErrCreateBlog
	}

	return aggregate, nil
}

func (s *blogsService) GetBlogs(ctx context.Context, filter blogs.BlogFilter) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = blogs.DefaultLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if !blogs.ValidSortFields[filter.SortBy] {
		filter.SortBy = blogs.DefaultSortBy
	}
	if !blogs.ValidSortOrders[filter.SortOrder] {
		filter.SortOrder = blogs.DefaultSortOrder
	}
	filter.Tags = normalizeTagNames(filter.Tags)

	blogsList, total, err := repo.Blogs.GetBlogs(ctx, filter)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, err
	}

	aggregates, err := s.assembleAggregates(ctx, repo, blogsList)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load blog relations")
		return nil, err
	}

	response := &blogs.BlogListResponse{
		Blogs:      make([]blogs.BlogResponse, 0, len(aggregates)),
		Total:      total,
		Page:       filter.Offset/filter.Limit + 1,
		TotalPages: (total + filter.Limit - 1) / filter.Limit,
	}

	for _, aggregate := range aggregates {
		response.Blogs = append(response.Blogs, blogs.NewBlogResponse(aggregate))
	}

	return response, nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, err
	}

	aggregate, err := s.loadAggregate(ctx, repo, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return entity.Blog{}, err
	}

	return aggregate, nil
}

// UpdateBlog applies the supplied top-level scalar fields only; content and
// tags are maintained through their own operations.
func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, err
	}
	defer repo.Rollback()

	blog := entity.Blog{
		ID:              id,
		Title:           req.Title,
		CoverImage:      req.CoverImage,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		ReadTime:        req.ReadTime,
	}

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
			return entity.Blog{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return entity.Blog{}, err
	}

	aggregate, err := s.loadAggregate(ctx, repo, id)
	if err != nil {
		return entity.Blog{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Blog{}, blogs.ErrUpdateBlog
	}

	return aggregate, nil
}

// DeleteBlog removes the aggregate; the store cascades content, media and
// tag associations while tags themselves stay as shared vocabulary. Bucket
// cleanup is best effort and never fails the call.
func (s *blogsService) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := s.loadAggregate(ctx, repo, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get blog")
		return err
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrDeleteBlog
	}

	if keys := mediaKeys(existing); len(keys) > 0 {
		if err := s.s3Client.DeleteFiles(keys); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Warn("Failed to delete blog media from storage")
		}
	}

	return nil
}

func (s *blogsService) IncrementViewCount(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, err
	}

	if err := repo.Blogs.IncrementViewCount(ctx, id); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
			return entity.Blog{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to increment view count")
		return entity.Blog{}, err
	}

	return repo.Blogs.GetBlogByID(ctx, id)
}
