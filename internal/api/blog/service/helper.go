package blogService

import (
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/entity"
	"context"
	"strings"
)

// normalizeTagNames lower-cases, trims and de-duplicates tag names while
// preserving their first-seen order, so ["a", "A", "a"] collapses to one tag.
func normalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	normalized := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
	}

	return normalized
}

// storageKey reduces a stored media reference to the object key the bucket
// knows it by. Full URLs keep only the part after the blog-images prefix;
// anything else is assumed to already be a key.
func storageKey(ref string) string {
	if ref == "" {
		return ""
	}

	if idx := strings.Index(ref, "blog-images/"); idx >= 0 {
		return ref[idx+len("blog-images/"):]
	}

	if strings.Contains(ref, "://") {
		return ""
	}

	return ref
}

func (s *blogsService) loadAggregate(ctx context.Context, repo blogRepository.Client, id string) (entity.Blog, error) {
	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return entity.Blog{}, err
	}

	aggregates, err := s.assembleAggregates(ctx, repo, []entity.Blog{blog})
	if err != nil {
		return entity.Blog{}, err
	}

	return aggregates[0], nil
}

// assembleAggregates eager-loads content blocks, their media and tags for a
// page of blogs in four bulk reads, then stitches the rows back onto their
// parents. Row order from the store (parent id, then "order") is preserved.
func (s *blogsService) assembleAggregates(ctx context.Context, repo blogRepository.Client, blogsList []entity.Blog) ([]entity.Blog, error) {
	if len(blogsList) == 0 {
		return []entity.Blog{}, nil
	}

	blogIDs := make([]string, 0, len(blogsList))
	for _, blog := range blogsList {
		blogIDs = append(blogIDs, blog.ID)
	}

	contents, err := repo.Contents.GetContentsByBlogIDs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}

	contentIDs := make([]string, 0, len(contents))
	for _, content := range contents {
		contentIDs = append(contentIDs, content.ID)
	}

	images, err := repo.Contents.GetImagesByContentIDs(ctx, contentIDs)
	if err != nil {
		return nil, err
	}

	videos, err := repo.Contents.GetVideosByContentIDs(ctx, contentIDs)
	if err != nil {
		return nil, err
	}

	blogTags, err := repo.Tags.GetBlogTags(ctx, blogIDs)
	if err != nil {
		return nil, err
	}

	imagesByContent := make(map[string][]entity.ContentImage)
	for _, img := range images {
		imagesByContent[img.ContentID] = append(imagesByContent[img.ContentID], img)
	}

	videosByContent := make(map[string][]entity.ContentVideo)
	for _, vid := range videos {
		videosByContent[vid.ContentID] = append(videosByContent[vid.ContentID], vid)
	}

	contentsByBlog := make(map[string][]entity.Content)
	for _, content := range contents {
		content.Images = imagesByContent[content.ID]
		if content.Images == nil {
			content.Images = []entity.ContentImage{}
		}
		content.Videos = videosByContent[content.ID]
		if content.Videos == nil {
			content.Videos = []entity.ContentVideo{}
		}
		contentsByBlog[content.BlogID] = append(contentsByBlog[content.BlogID], content)
	}

	tagsByBlog := make(map[string][]string)
	for _, blogTag := range blogTags {
		tagsByBlog[blogTag.BlogID] = append(tagsByBlog[blogTag.BlogID], blogTag.TagName)
	}

	aggregates := make([]entity.Blog, 0, len(blogsList))
	for _, blog := range blogsList {
		blog.Content = contentsByBlog[blog.ID]
		if blog.Content == nil {
			blog.Content = []entity.Content{}
		}
		blog.Tags = tagsByBlog[blog.ID]
		if blog.Tags == nil {
			blog.Tags = []string{}
		}
		aggregates = append(aggregates, blog)
	}

	return aggregates, nil
}

// mediaKeys collects every storage key referenced by the aggregate for
// best-effort cleanup after the blog row is gone.
func mediaKeys(blog entity.Blog) []string {
	var keys []string

	if key := storageKey(blog.CoverImage); key != "" {
		keys = append(keys, key)
	}

	for _, content := range blog.Content {
		for _, img := range content.Images {
			if key := storageKey(img.URL); key != "" {
				keys = append(keys, key)
			}
		}
		for _, vid := range content.Videos {
			if key := storageKey(vid.ThumbnailURL); key != "" {
				keys = append(keys, key)
			}
		}
	}

	return keys
}
