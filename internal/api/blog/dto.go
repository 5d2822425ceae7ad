package blogs

import (
	"BlogGolang/internal/entity"
	"time"
)

type CreateBlogRequest struct {
	Title           string           `json:"title" validate:"required,min=1,max=256"`
	CoverImage      string           `json:"coverImage" validate:"omitempty,max=512"`
	MetaTitle       string           `json:"metaTitle" validate:"omitempty,max=256"`
	MetaDescription string           `json:"metaDescription" validate:"omitempty,max=512"`
	ReadTime        int              `json:"readTime" validate:"omitempty,min=0"`
	Content         []ContentRequest `json:"content" validate:"omitempty,dive"`
	Tags            []string         `json:"tags" validate:"omitempty,dive,min=1"`
}

type UpdateBlogRequest struct {
	Title           string `json:"title" validate:"omitempty,min=1,max=256"`
	CoverImage      string `json:"coverImage" validate:"omitempty,max=512"`
	MetaTitle       string `json:"metaTitle" validate:"omitempty,max=256"`
	MetaDescription string `json:"metaDescription" validate:"omitempty,max=512"`
	ReadTime        int    `json:"readTime" validate:"omitempty,min=0"`
}

type ContentRequest struct {
	Type        string                `json:"type" validate:"required,oneof=TEXT IMAGES VIDEOS"`
	Order       int                   `json:"order" validate:"min=0"`
	Title       string                `json:"title" validate:"omitempty,max=256"`
	Description string                `json:"description"`
	Images      []ContentImageRequest `json:"images" validate:"omitempty,dive"`
	Videos      []ContentVideoRequest `json:"videos" validate:"omitempty,dive"`
}

type UpdateContentRequest struct {
	Type        string `json:"type" validate:"omitempty,oneof=TEXT IMAGES VIDEOS"`
	Order       *int   `json:"order" validate:"omitempty,min=0"`
	Title       string `json:"title" validate:"omitempty,max=256"`
	Description string `json:"description"`
}

type ContentImageRequest struct {
	URL     string `json:"url" validate:"required,max=512"`
	AltText string `json:"altText" validate:"omitempty,max=256"`
	Caption string `json:"caption" validate:"omitempty,max=512"`
	Order   int    `json:"order" validate:"min=0"`
}

type ContentVideoRequest struct {
	URL          string `json:"url" validate:"required,max=512"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,max=512"`
	Title        string `json:"title" validate:"omitempty,max=256"`
	Duration     int    `json:"duration" validate:"omitempty,min=1"`
	Order        int    `json:"order" validate:"min=0"`
}

type TagNamesRequest struct {
	Tags []string `json:"tags" validate:"required,min=1,dive,min=1"`
}

// BlogFilter is the typed form of the list endpoint's query parameters.
type BlogFilter struct {
	Tags      []string
	Search    string
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

const (
	DefaultLimit     = 10
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = "desc"
)

var ValidSortFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"viewCount": true,
	"title":     true,
}

var ValidSortOrders = map[string]bool{
	"asc":  true,
	"desc": true,
}

type BlogResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	CoverImage      string            `json:"coverImage"`
	MetaTitle       string            `json:"metaTitle"`
	MetaDescription string            `json:"metaDescription"`
	ReadTime        int               `json:"readTime"`
	ViewCount       int               `json:"viewCount"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	Content         []ContentResponse `json:"content"`
	Tags            []string          `json:"tags"`
}

type ContentResponse struct {
	ID          string                 `json:"id"`
	BlogID      string                 `json:"blogId"`
	Type        entity.ContentType     `json:"type"`
	Order       int                    `json:"order"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Images      []ContentImageResponse `json:"images"`
	Videos      []ContentVideoResponse `json:"videos"`
}

type ContentImageResponse struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Caption string `json:"caption"`
	Order   int    `json:"order"`
}

type ContentVideoResponse struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Title        string `json:"title"`
	Duration     int    `json:"duration"`
	Order        int    `json:"order"`
}

type BlogListResponse struct {
	Blogs      []BlogResponse `json:"blogs"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

type TagResponse struct {
	Name      string `json:"name"`
	BlogCount int    `json:"blogCount"`
}

type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

type BlogTagsResponse struct {
	BlogID string   `json:"blogId"`
	Tags   []string `json:"tags"`
}

func NewBlogResponse(blog entity.Blog) BlogResponse {
	content := make([]ContentResponse, 0, len(blog.Content))
	for _, block := range blog.Content {
		content = append(content, NewContentResponse(block))
	}

	tags := blog.Tags
	if tags == nil {
		tags = []string{}
	}

	return BlogResponse{
		ID:              blog.ID,
		Title:           blog.Title,
		CoverImage:      blog.CoverImage,
		MetaTitle:       blog.MetaTitle,
		MetaDescription: blog.MetaDescription,
		ReadTime:        blog.ReadTime,
		ViewCount:       blog.ViewCount,
		CreatedAt:       blog.CreatedAt,
		UpdatedAt:       blog.UpdatedAt,
		Content:         content,
		Tags:            tags,
	}
}

func NewContentResponse(content entity.Content) ContentResponse {
	images := make([]ContentImageResponse, 0, len(content.Images))
	for _, img := range content.Images {
		images = append(images, ContentImageResponse{
			ID:      img.ID,
			URL:     img.URL,
			AltText: img.AltText,
			Caption: img.Caption,
			Order:   img.Order,
		})
	}

	videos := make([]ContentVideoResponse, 0, len(content.Videos))
	for _, vid := range content.Videos {
		videos = append(videos, ContentVideoResponse{
			ID:           vid.ID,
			URL:          vid.URL,
			ThumbnailURL: vid.ThumbnailURL,
			Title:        vid.Title,
			Duration:     vid.Duration,
			Order:        vid.Order,
		})
	}

	return ContentResponse{
		ID:          content.ID,
		BlogID:      content.BlogID,
		Type:        content.Type,
		Order:       content.Order,
		Title:       content.Title,
		Description: content.Description,
		Images:      images,
		Videos:      videos,
	}
}
