package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/entity"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Stub sub-repositories: each method delegates to a function field when set
// and succeeds with zero values otherwise.

type stubBlogs struct {
	createBlog         func(entity.Blog) error
	getBlogByID        func(string) (entity.Blog, error)
	getBlogs           func(blogs.BlogFilter) ([]entity.Blog, int, error)
	updateBlog         func(entity.Blog) error
	deleteBlog         func(string) error
	incrementViewCount func(string) error
}

func (s *stubBlogs) CreateBlog(_ context.Context, blog entity.Blog) error {
	if s.createBlog != nil {
		return s.createBlog(blog)
	}
	return nil
}

func (s *stubBlogs) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	if s.getBlogByID != nil {
		return s.getBlogByID(id)
	}
	return entity.Blog{ID: id}, nil
}

func (s *stubBlogs) GetBlogs(_ context.Context, filter blogs.BlogFilter) ([]entity.Blog, int, error) {
	if s.getBlogs != nil {
		return s.getBlogs(filter)
	}
	return nil, 0, nil
}

func (s *stubBlogs) UpdateBlog(_ context.Context, blog entity.Blog) error {
	if s.updateBlog != nil {
		return s.updateBlog(blog)
	}
	return nil
}

func (s *stubBlogs) DeleteBlog(_ context.Context, id string) error {
	if s.deleteBlog != nil {
		return s.deleteBlog(id)
	}
	return nil
}

func (s *stubBlogs) IncrementViewCount(_ context.Context, id string) error {
	if s.incrementViewCount != nil {
		return s.incrementViewCount(id)
	}
	return nil
}

type stubContents struct {
	createContent func(entity.Content) error
	getContents   func([]string) ([]entity.Content, error)
	getImages     func([]string) ([]entity.ContentImage, error)
	getVideos     func([]string) ([]entity.ContentVideo, error)
	updateContent func(entity.Content, bool) error
	deleteContent func(string) error
}

func (s *stubContents) CreateContent(_ context.Context, content entity.Content) error {
	if s.createContent != nil {
		return s.createContent(content)
	}
	return nil
}

func (s *stubContents) CreateContentImages(_ context.Context, _ []entity.ContentImage) error {
	return nil
}

func (s *stubContents) CreateContentVideos(_ context.Context, _ []entity.ContentVideo) error {
	return nil
}

func (s *stubContents) GetContentByID(_ context.Context, id string) (entity.Content, error) {
	return entity.Content{ID: id}, nil
}

func (s *stubContents) GetContentsByBlogIDs(_ context.Context, blogIDs []string) ([]entity.Content, error) {
	if s.getContents != nil {
		return s.getContents(blogIDs)
	}
	return nil, nil
}

func (s *stubContents) GetImagesByContentIDs(_ context.Context, contentIDs []string) ([]entity.ContentImage, error) {
	if s.getImages != nil {
		return s.getImages(contentIDs)
	}
	return nil, nil
}

func (s *stubContents) GetVideosByContentIDs(_ context.Context, contentIDs []string) ([]entity.ContentVideo, error) {
	if s.getVideos != nil {
		return s.getVideos(contentIDs)
	}
	return nil, nil
}

func (s *stubContents) UpdateContent(_ context.Context, content entity.Content, withOrder bool) error {
	if s.updateContent != nil {
		return s.updateContent(content, withOrder)
	}
	return nil
}

func (s *stubContents) DeleteContent(_ context.Context, id string) error {
	if s.deleteContent != nil {
		return s.deleteContent(id)
	}
	return nil
}

type stubTags struct {
	upserted       []string
	associated     []string
	removed        []string
	upsertErr      error
	tagsByBlog     []string
	allTags        []entity.Tag
	blogTagsByBlog []entity.BlogTag
}

func (s *stubTags) UpsertTag(_ context.Context, name string) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserted = append(s.upserted, name)
	return nil
}

func (s *stubTags) CreateBlogTags(_ context.Context, _ string, names []string) error {
	s.associated = append(s.associated, names...)
	return nil
}

func (s *stubTags) DeleteBlogTags(_ context.Context, _ string, names []string) error {
	s.removed = append(s.removed, names...)
	return nil
}

func (s *stubTags) GetTagsByBlogID(_ context.Context, _ string) ([]string, error) {
	return s.tagsByBlog, nil
}

func (s *stubTags) GetBlogTags(_ context.Context, _ []string) ([]entity.BlogTag, error) {
	return s.blogTagsByBlog, nil
}

func (s *stubTags) GetAllTags(_ context.Context) ([]entity.Tag, error) {
	return s.allTags, nil
}

// fakeRepository hands every client the same stubs and counts transaction
// outcomes so tests can assert commit versus rollback.
type fakeRepository struct {
	blogs    *stubBlogs
	contents *stubContents
	tags     *stubTags

	newClientErr error
	commits      int
	rollbacks    int
	txRequests   []bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		blogs:    &stubBlogs{},
		contents: &stubContents{},
		tags:     &stubTags{},
	}
}

func (f *fakeRepository) NewClient(tx bool) (blogRepository.Client, error) {
	if f.newClientErr != nil {
		return blogRepository.Client{}, f.newClientErr
	}

	f.txRequests = append(f.txRequests, tx)

	commit := func() error { return nil }
	rollback := func() error { return nil }
	if tx {
		committed := false
		commit = func() error {
			committed = true
			f.commits++
			return nil
		}
		rollback = func() error {
			if !committed {
				f.rollbacks++
			}
			return nil
		}
	}

	return blogRepository.Client{
		Blogs:    f.blogs,
		Contents: f.contents,
		Tags:     f.tags,
		Commit:   commit,
		Rollback: rollback,
	}, nil
}

type stubS3 struct {
	deleted   [][]string
	deleteErr error
}

func (s *stubS3) SignedPutURL(_, key string) (string, error) {
	return "https://bucket.example.com/blog-images/" + key, nil
}

func (s *stubS3) SignedGetURL(key string) (string, error) {
	return "https://bucket.example.com/blog-images/" + key, nil
}

func (s *stubS3) DeleteFiles(keys []string) error {
	s.deleted = append(s.deleted, keys)
	return s.deleteErr
}

type stubUtils struct {
	counter int
}

func (u *stubUtils) NewULIDFromTimestamp(_ time.Time) (string, error) {
	u.counter++
	return fmt.Sprintf("id-%d", u.counter), nil
}

func (u *stubUtils) GenerateFileName(_, _ string) string {
	return "image-1.jpg"
}

func newTestService(repo *fakeRepository, s3Stub *stubS3) IBlogsService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if s3Stub == nil {
		s3Stub = &stubS3{}
	}

	return NewBlogsService(logger, repo, s3Stub, &stubUtils{})
}
