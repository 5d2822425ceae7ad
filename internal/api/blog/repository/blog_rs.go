package blogRepository

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID              sql.NullString `db:"id"`
	Title           sql.NullString `db:"title"`
	CoverImage      sql.NullString `db:"cover_image"`
	MetaTitle       sql.NullString `db:"meta_title"`
	MetaDescription sql.NullString `db:"meta_description"`
	ReadTime        int            `db:"read_time"`
	ViewCount       int            `db:"view_count"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// Sort fields arrive already whitelisted by the service; the column map is
// the only thing ever interpolated into the ORDER BY clause.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"viewCount": "view_count",
	"title":     "title",
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":               blog.ID,
		"title":            blog.Title,
		"cover_image":      blog.CoverImage,
		"meta_title":       blog.MetaTitle,
		"meta_description": blog.MetaDescription,
		"read_time":        blog.ReadTime,
		"view_count":       blog.ViewCount,
		"created_at":       blog.CreatedAt,
		"updated_at":       blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateBlog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBlogByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogsRepository) GetBlogs(ctx context.Context, filter blogs.BlogFilter) ([]entity.Blog, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var conditions []string
	argsKV := map[string]interface{}{}

	if len(filter.Tags) > 0 {
		conditions = append(conditions, condBlogHasAnyTag)
		argsKV["tags"] = filter.Tags
	}

	if filter.Search != "" {
		conditions = append(conditions, condBlogMatchesSearch)
		argsKV["search"] = "%" + escapeLike(filter.Search) + "%"
	}

	var where string
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery, countArgs, err := buildQuery(r.q, queryCountBlogs+where, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogs count query preparation err")
		return nil, 0, err
	}

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogs count execution err")
		return nil, 0, err
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	argsKV["limit"] = filter.Limit
	argsKV["offset"] = filter.Offset

	listQuery := querySelectBlogs + where +
		fmt.Sprintf(" ORDER BY %s %s LIMIT :limit OFFSET :offset", column, direction)

	query, args, err := buildQuery(r.q, listQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogs named query preparation err")
		return nil, 0, err
	}

	var blogsList []BlogDB
	if err := r.q.SelectContext(ctx, &blogsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogs execution err")
		return nil, 0, err
	}

	result := make([]entity.Blog, 0, len(blogsList))
	for _, blogDB := range blogsList {
		result = append(result, r.makeBlog(blogDB))
	}

	return result, total, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":               blog.ID,
		"title":            blog.Title,
		"cover_image":      blog.CoverImage,
		"meta_title":       blog.MetaTitle,
		"meta_description": blog.MetaDescription,
		"read_time":        blog.ReadTime,
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blog.ID,
		}).Warn("UpdateBlog no rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteBlog no rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

// IncrementViewCount bumps the counter in a single arithmetic update so
// concurrent increments never overwrite each other.
func (r *blogsRepository) IncrementViewCount(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryIncrementViewCount, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementViewCount named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementViewCount execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementViewCount rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("IncrementViewCount no rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters in user input so a search term
// like "100%" matches literally. Postgres treats backslash as the escape
// character for ILIKE by default.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildQuery resolves named parameters and expands slice arguments for IN
// clauses before rebinding for the underlying driver.
func buildQuery(q SQLExecutor, namedQuery string, argsKV map[string]interface{}) (string, []interface{}, error) {
	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		return "", nil, err
	}

	query, args, err = sqlx.In(query, args...)
	if err != nil {
		return "", nil, err
	}

	return q.Rebind(query), args, nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.Blog {
	return entity.Blog{
		ID:              blog.ID.String,
		Title:           blog.Title.String,
		CoverImage:      blog.CoverImage.String,
		MetaTitle:       blog.MetaTitle.String,
		MetaDescription: blog.MetaDescription.String,
		ReadTime:        blog.ReadTime,
		ViewCount:       blog.ViewCount,
		CreatedAt:       blog.CreatedAt,
		UpdatedAt:       blog.UpdatedAt,
	}
}
