package blogRepository

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ContentDB struct {
	ID          sql.NullString `db:"id"`
	BlogID      sql.NullString `db:"blog_id"`
	Type        sql.NullString `db:"type"`
	Order       int            `db:"order"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type ContentImageDB struct {
	ID        sql.NullString `db:"id"`
	ContentID sql.NullString `db:"content_id"`
	URL       sql.NullString `db:"url"`
	AltText   sql.NullString `db:"alt_text"`
	Caption   sql.NullString `db:"caption"`
	Order     int            `db:"order"`
}

type ContentVideoDB struct {
	ID           sql.NullString `db:"id"`
	ContentID    sql.NullString `db:"content_id"`
	URL          sql.NullString `db:"url"`
	ThumbnailURL sql.NullString `db:"thumbnail_url"`
	Title        sql.NullString `db:"title"`
	Duration     int            `db:"duration"`
	Order        int            `db:"order"`
}

func (r *contentsRepository) CreateContent(ctx context.Context, content entity.Content) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          content.ID,
		"blog_id":     content.BlogID,
		"type":        string(content.Type),
		"order":       content.Order,
		"title":       content.Title,
		"description": content.Description,
		"created_at":  content.CreatedAt,
		"updated_at":  content.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateContent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateContent named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating content")
		return err
	}

	return nil
}

func (r *contentsRepository) CreateContentImages(ctx context.Context, images []entity.ContentImage) error {
	if len(images) == 0 {
		return nil
	}

	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreateContentImages, images)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateContentImages named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating content images")
		return err
	}

	return nil
}

func (r *contentsRepository) CreateContentVideos(ctx context.Context, videos []entity.ContentVideo) error {
	if len(videos) == 0 {
		return nil
	}

	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreateContentVideos, videos)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateContentVideos named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating content videos")
		return err
	}

	return nil
}

func (r *contentsRepository) GetContentByID(ctx context.Context, id string) (entity.Content, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var content ContentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetContentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetContentByID named query preparation err")
		return entity.Content{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetContentByID no rows found")
			return entity.Content{}, blogs.ErrContentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetContentByID execution err")
		return entity.Content{}, err
	}

	return r.makeContent(content), nil
}

func (r *contentsRepository) GetContentsByBlogIDs(ctx context.Context, blogIDs []string) ([]entity.Content, error) {
	if len(blogIDs) == 0 {
		return nil, nil
	}

	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := buildQuery(r.q, queryGetContentsByBlogIDs, map[string]interface{}{
		"blog_ids": blogIDs,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetContentsByBlogIDs named query preparation err")
		return nil, err
	}

	var contentsList []ContentDB
	if err := r.q.SelectContext(ctx, &contentsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetContentsByBlogIDs execution err")
		return nil, err
	}

	contents := make([]entity.Content, 0, len(contentsList))
	for _, contentDB := range contentsList {
		contents = append(contents, r.makeContent(contentDB))
	}

	return contents, nil
}

func (r *contentsRepository) GetImagesByContentIDs(ctx context.Context, contentIDs []string) ([]entity.ContentImage, error) {
	if len(contentIDs) == 0 {
		return nil, nil
	}

	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := buildQuery(r.q, queryGetImagesByContentIDs, map[string]interface{}{
		"content_ids": contentIDs,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetImagesByContentIDs named query preparation err")
		return nil, err
	}

	var imagesList []ContentImageDB
	if err := r.q.SelectContext(ctx, &imagesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetImagesByContentIDs execution err")
		return nil, err
	}

	images := make([]entity.ContentImage, 0, len(imagesList))
	for _, imageDB := range imagesList {
		images = append(images, entity.ContentImage{
			ID:        imageDB.ID.String,
			ContentID: imageDB.ContentID.String,
			URL:       imageDB.URL.String,
			AltText:   imageDB.AltText.String,
			Caption:   imageDB.Caption.String,
			Order:     imageDB.Order,
		})
	}

	return images, nil
}

func (r *contentsRepository) GetVideosByContentIDs(ctx context.Context, contentIDs []string) ([]entity.ContentVideo, error) {
	if len(contentIDs) == 0 {
		return nil, nil
	}

	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := buildQuery(r.q, queryGetVideosByContentIDs, map[string]interface{}{
		"content_ids": contentIDs,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetVideosByContentIDs named query preparation err")
		return nil, err
	}

	var videosList []ContentVideoDB
	if err := r.q.SelectContext(ctx, &videosList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetVideosByContentIDs execution err")
		return nil, err
	}

	videos := make([]entity.ContentVideo, 0, len(videosList))
	for _, videoDB := range videosList {
		videos = append(videos, entity.ContentVideo{
			ID:           videoDB.ID.String,
			ContentID:    videoDB.ContentID.String,
			URL:          videoDB.URL.String,
			ThumbnailURL: videoDB.ThumbnailURL.String,
			Title:        videoDB.Title.String,
			Duration:     videoDB.Duration,
			Order:        videoDB.Order,
		})
	}

	return videos, nil
}

// UpdateContent touches scalar fields only; media rows are owned by the
// creation path. withOrder distinguishes "set order to 0" from "order not
// supplied".
func (r *contentsRepository) UpdateContent(ctx context.Context, content entity.Content, withOrder bool) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          content.ID,
		"type":        string(content.Type),
		"title":       content.Title,
		"description": content.Description,
		"updated_at":  time.Now(),
	}

	namedQuery := queryUpdateContent
	if withOrder {
		namedQuery = queryUpdateContentWithOrder
		argsKV["order"] = content.Order
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateContent named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateContent execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateContent rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         content.ID,
		}).Warn("UpdateContent no rows affected")
		return blogs.ErrContentNotFound
	}

	return nil
}

func (r *contentsRepository) DeleteContent(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteContent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteContent named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteContent execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteContent rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteContent no rows affected")
		return blogs.ErrContentNotFound
	}

	return nil
}

func (r *contentsRepository) makeContent(content ContentDB) entity.Content {
	return entity.Content{
		ID:          content.ID.String,
		BlogID:      content.BlogID.String,
		Type:        entity.ContentType(content.Type.String),
		Order:       content.Order,
		Title:       content.Title.String,
		Description: content.Description.String,
		CreatedAt:   content.CreatedAt,
		UpdatedAt:   content.UpdatedAt,
	}
}
