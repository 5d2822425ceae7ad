package blogRepository

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

// NewClient returns a unit of work over the store. With tx=true every
// operation runs on one transaction until Commit or Rollback; otherwise
// Commit and Rollback are no-ops.
func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:    &blogsRepository{q: sqlExecutor, log: r.log},
		Contents: &contentsRepository{q: sqlExecutor, log: r.log},
		Tags:     &tagsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
		GetBlogs(ctx context.Context, filter blogs.BlogFilter) ([]entity.Blog, int, error)
		UpdateBlog(ctx context.Context, blog entity.Blog) error
		DeleteBlog(ctx context.Context, id string) error
		IncrementViewCount(ctx context.Context, id string) error
	}

	Contents interface {
		CreateContent(ctx context.Context, content entity.Content) error
		CreateContentImages(ctx context.Context, images []entity.ContentImage) error
		CreateContentVideos(ctx context.Context, videos []entity.ContentVideo) error
		GetContentByID(ctx context.Context, id string) (entity.Content, error)
		GetContentsByBlogIDs(ctx context.Context, blogIDs []string) ([]entity.Content, error)
		GetImagesByContentIDs(ctx context.Context, contentIDs []string) ([]entity.ContentImage, error)
		GetVideosByContentIDs(ctx context.Context, contentIDs []string) ([]entity.ContentVideo, error)
		UpdateContent(ctx context.Context, content entity.Content, withOrder bool) error
		DeleteContent(ctx context.Context, id string) error
	}

	Tags interface {
		UpsertTag(ctx context.Context, name string) error
		CreateBlogTags(ctx context.Context, blogID string, names []string) error
		DeleteBlogTags(ctx context.Context, blogID string, names []string) error
		GetTagsByBlogID(ctx context.Context, blogID string) ([]string, error)
		GetBlogTags(ctx context.Context, blogIDs []string) ([]entity.BlogTag, error)
		GetAllTags(ctx context.Context) ([]entity.Tag, error)
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type contentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type tagsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
