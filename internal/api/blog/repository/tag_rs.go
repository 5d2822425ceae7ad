package blogRepository

import (
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TagDB struct {
	Name      sql.NullString `db:"name"`
	BlogCount int            `db:"blog_count"`
}

// UpsertTag creates the tag if absent and is a no-op otherwise, so it is
// always safe to call before associating.
func (r *tagsRepository) UpsertTag(ctx context.Context, name string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"name": name,
	}

	query, args, err := sqlx.Named(queryUpsertTag, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertTag named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when upserting tag")
		return err
	}

	return nil
}

func (r *tagsRepository) CreateBlogTags(ctx context.Context, blogID string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	requestID := contextPkg.GetRequestID(ctx)

	rows := make([]entity.BlogTag, 0, len(names))
	for _, name := range names {
		rows = append(rows, entity.BlogTag{
			BlogID:  blogID,
			TagName: name,
		})
	}

	query, args, err := sqlx.Named(queryCreateBlogTags, rows)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateBlogTags named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog tags")
		return err
	}

	return nil
}

func (r *tagsRepository) DeleteBlogTags(ctx context.Context, blogID string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := buildQuery(r.q, queryDeleteBlogTags, map[string]interface{}{
		"blog_id":   blogID,
		"tag_names": names,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlogTags named query preparation err")
		return err
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlogTags execution err")
		return err
	}

	return nil
}

func (r *tagsRepository) GetTagsByBlogID(ctx context.Context, blogID string) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryGetTagsByBlogID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagsByBlogID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var names []string
	if err := r.q.SelectContext(ctx, &names, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagsByBlogID execution err")
		return nil, err
	}

	return names, nil
}

func (r *tagsRepository) GetBlogTags(ctx context.Context, blogIDs []string) ([]entity.BlogTag, error) {
	if len(blogIDs) == 0 {
		return nil, nil
	}

	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := buildQuery(r.q, queryGetBlogTags, map[string]interface{}{
		"blog_ids": blogIDs,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogTags named query preparation err")
		return nil, err
	}

	var blogTags []entity.BlogTag
	if err := r.q.SelectContext(ctx, &blogTags, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogTags execution err")
		return nil, err
	}

	return blogTags, nil
}

func (r *tagsRepository) GetAllTags(ctx context.Context) ([]entity.Tag, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryGetAllTags, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllTags named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var tagsList []TagDB
	if err := r.q.SelectContext(ctx, &tagsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllTags execution err")
		return nil, err
	}

	tags := make([]entity.Tag, 0, len(tagsList))
	for _, tagDB := range tagsList {
		tags = append(tags, entity.Tag{
			Name:      tagDB.Name.String,
			BlogCount: tagDB.BlogCount,
		})
	}

	return tags, nil
}
