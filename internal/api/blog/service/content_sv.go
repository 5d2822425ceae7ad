package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// insertContentBlock writes one content block and its media on the given
// client; during aggregate creation that client is the open transaction.
// Returns the id of the new block.
func (s *blogsService) insertContentBlock(ctx context.Context, repo blogRepository.Client, blogID string, block blogs.ContentRequest, now time.Time) (string, error) {
	contentID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return "", err
	}

	content := entity.Content{
		ID:          contentID,
		BlogID:      blogID,
		Type:        entity.ContentType(block.Type),
		Order:       block.Order,
		Title:       block.Title,
		Description: block.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.Contents.CreateContent(ctx, content); err != nil {
		return "", err
	}

	if len(block.Images) > 0 {
		images := make([]entity.ContentImage, 0, len(block.Images))
		for _, img := range block.Images {
			imageID, err := s.utils.NewULIDFromTimestamp(now)
			if err != nil {
				return "", err
			}
			images = append(images, entity.ContentImage{
				ID:        imageID,
				ContentID: contentID,
				URL:       img.URL,
				AltText:   img.AltText,
				Caption:   img.Caption,
				Order:     img.Order,
			})
		}
		if err := repo.Contents.CreateContentImages(ctx, images); err != nil {
			return "", err
		}
	}

	if len(block.Videos) > 0 {
		videos := make([]entity.ContentVideo, 0, len(block.Videos))
		for _, vid := range block.Videos {
			videoID, err := s.utils.NewULIDFromTimestamp(now)
			if err != nil {
				return "", err
			}
			videos = append(videos, entity.ContentVideo{
				ID:           videoID,
				ContentID:    contentID,
				URL:          vid.URL,
				ThumbnailURL: vid.ThumbnailURL,
				Title:        vid.Title,
				Duration:     vid.Duration,
				Order:        vid.Order,
			})
		}
		if err := repo.Contents.CreateContentVideos(ctx, videos); err != nil {
			return "", err
		}
	}

	return contentID, nil
}

func (s *blogsService) AddContentToBlog(ctx context.Context, blogID string, req blogs.ContentRequest) (entity.Content, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Content{}, err
	}
	defer repo.Rollback()

	if _, err := repo.Blogs.GetBlogByID(ctx, blogID); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blogID,
			}).Warn("Blog not found")
		}
		return entity.Content{}, err
	}

	now := time.Now()
	contentID, err := s.insertContentBlock(ctx, repo, blogID, req, now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to add content to blog")
		return entity.Content{}, err
	}

	content, err := s.loadContent(ctx, repo, contentID)
	if err != nil {
		return entity.Content{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Content{}, blogs.ErrCreateContent
	}

	return content, nil
}

func (s *blogsService) UpdateContent(ctx context.Context, contentID string, req blogs.UpdateContentRequest) (entity.Content, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Content{}, err
	}

	content := entity.Content{
		ID:          contentID,
		Type:        entity.ContentType(req.Type),
		Title:       req.Title,
		Description: req.Description,
	}

	withOrder := req.Order != nil
	if withOrder {
		content.Order = *req.Order
	}

	if err := repo.Contents.UpdateContent(ctx, content, withOrder); err != nil {
		if errors.Is(err, blogs.ErrContentNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         contentID,
			}).Warn("Content not found")
			return entity.Content{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         contentID,
			"error":      err.Error(),
		}).Error("Failed to update content")
		return entity.Content{}, err
	}

	return s.loadContent(ctx, repo, contentID)
}

func (s *blogsService) DeleteContent(ctx context.Context, contentID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Contents.DeleteContent(ctx, contentID); err != nil {
		if errors.Is(err, blogs.ErrContentNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         contentID,
			}).Warn("Content not found")
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         contentID,
			"error":      err.Error(),
		}).Error("Failed to delete content")
		return err
	}

	return nil
}

func (s *blogsService) loadContent(ctx context.Context, repo blogRepository.Client, contentID string) (entity.Content, error) {
	content, err := repo.Contents.GetContentByID(ctx, contentID)
	if err != nil {
		return entity.Content{}, err
	}

	images, err := repo.Contents.GetImagesByContentIDs(ctx, []string{contentID})
	if err != nil {
		return entity.Content{}, err
	}

	videos, err := repo.Contents.GetVideosByContentIDs(ctx, []string{contentID})
	if err != nil {
		return entity.Content{}, err
	}

	content.Images = images
	if content.Images == nil {
		content.Images = []entity.ContentImage{}
	}
	content.Videos = videos
	if content.Videos == nil {
		content.Videos = []entity.ContentVideo{}
	}

	return content, nil
}
