package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// AddTagsToBlog upserts each tag into the shared vocabulary and associates
// it with the blog. Existing associations are left untouched, so re-adding a
// tag is a no-op rather than an error.
func (s *blogsService) AddTagsToBlog(ctx context.Context, blogID string, tagNames []string) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	if _, err := repo.Blogs.GetBlogByID(ctx, blogID); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blogID,
			}).Warn("Blog not found")
		}
		return nil, err
	}

	names := normalizeTagNames(tagNames)
	for _, name := range names {
		if err := repo.Tags.UpsertTag(ctx, name); err != nil {
			return nil, err
		}
	}

	if err := repo.Tags.CreateBlogTags(ctx, blogID, names); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to associate tags with blog")
		return nil, err
	}

	tags, err := repo.Tags.GetTagsByBlogID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, blogs.ErrUpdateTagAssociation
	}

	if tags == nil {
		tags = []string{}
	}

	return tags, nil
}

// RemoveTagsFromBlog drops the associations only; the tags themselves remain
// in the vocabulary for other blogs.
func (s *blogsService) RemoveTagsFromBlog(ctx context.Context, blogID string, tagNames []string) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	if _, err := repo.Blogs.GetBlogByID(ctx, blogID); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blogID,
			}).Warn("Blog not found")
		}
		return nil, err
	}

	if err := repo.Tags.DeleteBlogTags(ctx, blogID, normalizeTagNames(tagNames)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to remove tags from blog")
		return nil, err
	}

	tags, err := repo.Tags.GetTagsByBlogID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, blogs.ErrUpdateTagAssociation
	}

	if tags == nil {
		tags = []string{}
	}

	return tags, nil
}

func (s *blogsService) GetAllTags(ctx context.Context) ([]entity.Tag, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	tags, err := repo.Tags.GetAllTags(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get tags")
		return nil, err
	}

	return tags, nil
}
