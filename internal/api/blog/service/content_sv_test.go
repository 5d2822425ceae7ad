package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddContentToBlog(t *testing.T) {
	repo := newFakeRepository()
	var created entity.Content
	repo.contents.createContent = func(content entity.Content) error {
		created = content
		return nil
	}
	service := newTestService(repo, nil)

	content, err := service.AddContentToBlog(context.Background(), "blog-1", blogs.ContentRequest{
		Type:        "TEXT",
		Order:       2,
		Description: "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "blog-1", created.BlogID)
	assert.Equal(t, entity.ContentTypeText, created.Type)
	assert.Equal(t, 2, created.Order)
	assert.Equal(t, created.ID, content.ID)
	assert.NotNil(t, content.Images)
	assert.NotNil(t, content.Videos)
	assert.Equal(t, 1, repo.commits)
}

func TestAddContentToBlogNotFound(t *testing.T) {
	repo := newFakeRepository()
	repo.blogs.getBlogByID = func(string) (entity.Blog, error) {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	service := newTestService(repo, nil)

	_, err := service.AddContentToBlog(context.Background(), "missing", blogs.ContentRequest{Type: "TEXT"})

	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.Equal(t, 0, repo.commits)
	assert.Equal(t, 1, repo.rollbacks)
}

func TestUpdateContentOrderFlag(t *testing.T) {
	repo := newFakeRepository()
	var seenWithOrder bool
	var seenOrder int
	repo.contents.updateContent = func(content entity.Content, withOrder bool) error {
		seenWithOrder = withOrder
		seenOrder = content.Order
		return nil
	}
	service := newTestService(repo, nil)

	order := 3
	_, err := service.UpdateContent(context.Background(), "content-1", blogs.UpdateContentRequest{
		Order: &order,
	})

	require.NoError(t, err)
	assert.True(t, seenWithOrder)
	assert.Equal(t, 3, seenOrder)

	_, err = service.UpdateContent(context.Background(), "content-1", blogs.UpdateContentRequest{
		Title: "new title",
	})

	require.NoError(t, err)
	assert.False(t, seenWithOrder)
}

func TestUpdateContentNotFound(t *testing.T) {
	repo := newFakeRepository()
	repo.contents.updateContent = func(entity.Content, bool) error {
		return blogs.ErrContentNotFound
	}
	service := newTestService(repo, nil)

	_, err := service.UpdateContent(context.Background(), "missing", blogs.UpdateContentRequest{Title: "x"})

	assert.ErrorIs(t, err, blogs.ErrContentNotFound)
}

func TestDeleteContentNotFound(t *testing.T) {
	repo := newFakeRepository()
	repo.contents.deleteContent = func(string) error {
		return blogs.ErrContentNotFound
	}
	service := newTestService(repo, nil)

	err := service.DeleteContent(context.Background(), "missing")

	assert.ErrorIs(t, err, blogs.ErrContentNotFound)
}
