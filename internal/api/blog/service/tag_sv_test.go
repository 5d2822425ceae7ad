package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTagsToBlog(t *testing.T) {
	repo := newFakeRepository()
	repo.tags.tagsByBlog = []string{"backend", "go"}
	service := newTestService(repo, nil)

	tags, err := service.AddTagsToBlog(context.Background(), "blog-1", []string{"Go", "Backend", "go"})

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "backend"}, repo.tags.upserted)
	assert.Equal(t, []string{"backend", "go"}, tags)
	assert.Equal(t, 1, repo.commits)
}

func TestAddTagsToBlogNotFound(t *testing.T) {
	repo := newFakeRepository()
	repo.blogs.getBlogByID = func(string) (entity.Blog, error) {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	service := newTestService(repo, nil)

	_, err := service.AddTagsToBlog(context.Background(), "missing", []string{"go"})

	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.Empty(t, repo.tags.upserted)
	assert.Equal(t, 0, repo.commits)
}

func TestRemoveTagsFromBlog(t *testing.T) {
	repo := newFakeRepository()
	repo.tags.tagsByBlog = []string{"go"}
	service := newTestService(repo, nil)

	tags, err := service.RemoveTagsFromBlog(context.Background(), "blog-1", []string{"Backend", "backend"})

	require.NoError(t, err)
	assert.Equal(t, []string{"backend"}, repo.tags.removed)
	assert.Equal(t, []string{"go"}, tags)
	assert.Equal(t, 1, repo.commits)
}

func TestRemoveTagsLeavesVocabularyAlone(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, nil)

	tags, err := service.RemoveTagsFromBlog(context.Background(), "blog-1", []string{"go"})

	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
	assert.Empty(t, repo.tags.upserted, "removal never touches the tags table itself")
}

func TestGetAllTags(t *testing.T) {
	repo := newFakeRepository()
	repo.tags.allTags = []entity.Tag{
		{Name: "backend", BlogCount: 2},
		{Name: "go", BlogCount: 5},
	}
	service := newTestService(repo, nil)

	tags, err := service.GetAllTags(context.Background())

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[1].Name)
	assert.Equal(t, 5, tags[1].BlogCount)
}
