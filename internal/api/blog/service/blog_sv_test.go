package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlogRequiresTitle(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, nil)

	_, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{Title: "   "})

	assert.ErrorIs(t, err, blogs.ErrTitleRequired)
	assert.Empty(t, repo.txRequests, "no transaction should be opened for invalid input")
}

func TestCreateBlogNormalizesTags(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, nil)

	_, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "My Post",
		Tags:  []string{"Go", "go ", "GO", "Backend"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "backend"}, repo.tags.upserted)
	assert.Equal(t, []string{"go", "backend"}, repo.tags.associated)
	assert.Equal(t, 1, repo.commits)
	assert.Equal(t, 0, repo.rollbacks)
}

func TestCreateBlogRollsBackOnContentFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.contents.createContent = func(entity.Content) error {
		return errors.New("insert failed")
	}
	service := newTestService(repo, nil)

	_, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "My Post",
		Content: []blogs.ContentRequest{
			{Type: "TEXT", Order: 0, Description: "hello"},
		},
	})

	require.Error(t, err)
	assert.Equal(t, 0, repo.commits)
	assert.Equal(t, 1, repo.rollbacks)
}

func TestGetBlogsDefaultsAndPageMath(t *testing.T) {
	repo := newFakeRepository()
	var seenFilter blogs.BlogFilter
	repo.blogs.getBlogs = func(filter blogs.BlogFilter) ([]entity.Blog, int, error) {
		seenFilter = filter
		return []entity.Blog{{ID: "blog-1"}}, 25, nil
	}
	service := newTestService(repo, nil)

	result, err := service.GetBlogs(context.Background(), blogs.BlogFilter{
		Limit:     0,
		Offset:    20,
		SortBy:    "nonsense",
		SortOrder: "sideways",
	})

	require.NoError(t, err)
	assert.Equal(t, blogs.DefaultLimit, seenFilter.Limit)
	assert.Equal(t, blogs.DefaultSortBy, seenFilter.SortBy)
	assert.Equal(t, blogs.DefaultSortOrder, seenFilter.SortOrder)
	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 3, result.TotalPages)
}

func TestGetBlogsEmptyPageKeepsShape(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, nil)

	result, err := service.GetBlogs(context.Background(), blogs.BlogFilter{Limit: 10})

	require.NoError(t, err)
	assert.NotNil(t, result.Blogs)
	assert.Empty(t, result.Blogs)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 1, result.Page)
}

func TestGetBlogByIDAssemblesAggregate(t *testing.T) {
	repo := newFakeRepository()
	repo.blogs.getBlogByID = func(id string) (entity.Blog, error) {
		return entity.Blog{ID: id, Title: "My Post"}, nil
	}
	repo.contents.getContents = func(blogIDs []string) ([]entity.Content, error) {
		return []entity.Content{
			{ID: "content-1", BlogID: "blog-1", Type: entity.ContentTypeImages, Order: 0},
		}, nil
	}
	repo.contents.getImages = func(contentIDs []string) ([]entity.ContentImage, error) {
		return []entity.ContentImage{
			{ID: "img-1", ContentID: "content-1", URL: "a.jpg", Order: 0},
		}, nil
	}
	repo.tags.blogTagsByBlog = []entity.BlogTag{
		{BlogID: "blog-1", TagName: "go"},
	}
	service := newTestService(repo, nil)

	blog, err := service.GetBlogByID(context.Background(), "blog-1")

	require.NoError(t, err)
	require.Len(t, blog.Content, 1)
	require.Len(t, blog.Content[0].Images, 1)
	assert.Equal(t, "img-1", blog.Content[0].Images[0].ID)
	assert.NotNil(t, blog.Content[0].Videos)
	assert.Empty(t, blog.Content[0].Videos)
	assert.Equal(t, []string{"go"}, blog.Tags)
}

func TestGetBlogByIDNotFound(t *testing.T) {
	repo := newFakeRepository()
	repo.blogs.getBlogByID = func(string) (entity.Blog, error) {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	service := newTestService(repo, nil)

	_, err := service.GetBlogByID(context.Background(), "missing")

	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestDeleteBlogCleansUpMedia(t *testing.T) {
	repo := newFakeRepository()
	repo.blogs.getBlogByID = func(id string) (entity.Blog, error) {
		return entity.Blog{ID: id, CoverImage: "blog-images/cover.jpg"}, nil
	}
	repo.contents.getContents = func([]string) ([]entity.Content, error) {
		return []entity.Content{{ID: "content-1", BlogID: "blog-1", Type: entity.ContentTypeImages}}, nil
	}
	repo.contents.getImages = func([]string) ([]entity.ContentImage, error) {
		return []entity.ContentImage{{ID: "img-1", ContentID: "content-1", URL: "blog-images/body.png"}}, nil
	}
	s3Stub := &stubS3{}
	service := newTestService(repo, s3Stub)

	err := service.DeleteBlog(context.Background(), "blog-1")

	require.NoError(t, err)
	assert.Equal(t, 1, repo.commits)
	require.Len(t, s3Stub.deleted, 1)
	assert.Equal(t, []string{"cover.jpg", "body.png"}, s3Stub.deleted[0])
}

func TestDeleteBlogSucceedsWhenStorageCleanupFails(t *testing.T) {
	repo := newFakeRepository()
	repo.blogs.getBlogByID = func(id string) (entity.Blog, error) {
		return entity.Blog{ID: id, CoverImage: "blog-images/cover.jpg"}, nil
	}
	s3Stub := &stubS3{deleteErr: errors.New("bucket unavailable")}
	service := newTestService(repo, s3Stub)

	err := service.DeleteBlog(context.Background(), "blog-1")

	require.NoError(t, err)
	assert.Equal(t, 1, repo.commits)
}

func TestIncrementViewCountReturnsFreshBlog(t *testing.T) {
	repo := newFakeRepository()
	incremented := false
	repo.blogs.incrementViewCount = func(id string) error {
		incremented = true
		return nil
	}
	repo.blogs.getBlogByID = func(id string) (entity.Blog, error) {
		return entity.Blog{ID: id, ViewCount: 43}, nil
	}
	service := newTestService(repo, nil)

	blog, err := service.IncrementViewCount(context.Background(), "blog-1")

	require.NoError(t, err)
	assert.True(t, incremented)
	assert.Equal(t, 43, blog.ViewCount)
}

func TestUpdateBlogNotFound(t *testing.T) {
	repo := newFakeRepository()
	repo.blogs.updateBlog = func(entity.Blog) error {
		return blogs.ErrBlogNotFound
	}
	service := newTestService(repo, nil)

	_, err := service.UpdateBlog(context.Background(), "missing", blogs.UpdateBlogRequest{Title: "x"})

	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.Equal(t, 0, repo.commits)
}
