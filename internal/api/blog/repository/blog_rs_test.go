package blogRepository

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	"context"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (Client, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db := sqlx.NewDb(mockDb, "sqlmock")
	client, err := New(db, logger).NewClient(false)
	require.NoError(t, err)

	return client, mock
}

func blogColumns() []string {
	return []string{
		"id", "title", "cover_image", "meta_title", "meta_description",
		"read_time", "view_count", "created_at", "updated_at",
	}
}

func TestGetBlogByID(t *testing.T) {
	client, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT(.|\s)+FROM blogs(.|\s)+WHERE id =`).
		WithArgs("blog-1").
		WillReturnRows(sqlmock.NewRows(blogColumns()).
			AddRow("blog-1", "Go Generics", "cover.jpg", "meta", "desc", 5, 42, now, now))

	blog, err := client.Blogs.GetBlogByID(context.Background(), "blog-1")

	require.NoError(t, err)
	assert.Equal(t, "blog-1", blog.ID)
	assert.Equal(t, "Go Generics", blog.Title)
	assert.Equal(t, 42, blog.ViewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogByIDNotFound(t *testing.T) {
	client, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT(.|\s)+FROM blogs(.|\s)+WHERE id =`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(blogColumns()))

	_, err := client.Blogs.GetBlogByID(context.Background(), "missing")

	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogsWithFilters(t *testing.T) {
	client, mock := newMockRepository(t)
	now := time.Now()

	filter := blogs.BlogFilter{
		Tags:      []string{"go", "backend"},
		Search:    "generics",
		Limit:     10,
		Offset:    0,
		SortBy:    "viewCount",
		SortOrder: "desc",
	}

	// The search term binds once per ILIKE column, so it repeats three times.
	mock.ExpectQuery(`SELECT COUNT\(\*\)(.|\s)+FROM blogs(.|\s)+EXISTS(.|\s)+blog_tags\.tag_name IN`).
		WithArgs("go", "backend", "%generics%", "%generics%", "%generics%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT(.|\s)+FROM blogs(.|\s)+ORDER BY view_count DESC LIMIT (.|\s)+ OFFSET`).
		WithArgs("go", "backend", "%generics%", "%generics%", "%generics%", 10, 0).
		WillReturnRows(sqlmock.NewRows(blogColumns()).
			AddRow("blog-1", "Go Generics", "", "", "", 5, 42, now, now))

	result, total, err := client.Blogs.GetBlogs(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, result, 1)
	assert.Equal(t, "blog-1", result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogsSearchMatchesWildcardsLiterally(t *testing.T) {
	client, mock := newMockRepository(t)

	escaped := `%100\%\_done%`

	mock.ExpectQuery(`SELECT COUNT\(\*\)(.|\s)+ILIKE`).
		WithArgs(escaped, escaped, escaped).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT(.|\s)+FROM blogs(.|\s)+ILIKE(.|\s)+ORDER BY created_at DESC LIMIT`).
		WithArgs(escaped, escaped, escaped, 10, 0).
		WillReturnRows(sqlmock.NewRows(blogColumns()))

	_, _, err := client.Blogs.GetBlogs(context.Background(), blogs.BlogFilter{
		Search: "100%_done",
		Limit:  10,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogsUnmappedSortFallsBack(t *testing.T) {
	client, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`ORDER BY created_at DESC LIMIT`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(blogColumns()))

	result, total, err := client.Blogs.GetBlogs(context.Background(), blogs.BlogFilter{
		Limit:  10,
		SortBy: "drop table",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBlogNotFound(t *testing.T) {
	client, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE blogs(.|\s)+SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.Blogs.UpdateBlog(context.Background(), entity.Blog{ID: "missing", Title: "x"})

	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlog(t *testing.T) {
	client, mock := newMockRepository(t)

	mock.ExpectExec(`DELETE FROM blogs(.|\s)+WHERE id =`).
		WithArgs("blog-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := client.Blogs.DeleteBlog(context.Background(), "blog-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViewCount(t *testing.T) {
	client, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE blogs(.|\s)+SET view_count = view_count \+ 1`).
		WithArgs("blog-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := client.Blogs.IncrementViewCount(context.Background(), "blog-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViewCountNotFound(t *testing.T) {
	client, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE blogs(.|\s)+SET view_count = view_count \+ 1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.Blogs.IncrementViewCount(context.Background(), "missing")

	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
