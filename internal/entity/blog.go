package entity

import "time"

type ContentType string

const (
	ContentTypeText   ContentType = "TEXT"
	ContentTypeImages ContentType = "IMAGES"
	ContentTypeVideos ContentType = "VIDEOS"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeText, ContentTypeImages, ContentTypeVideos:
		return true
	}
	return false
}

type Blog struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	CoverImage      string    `db:"cover_image"`
	MetaTitle       string    `db:"meta_title"`
	MetaDescription string    `db:"meta_description"`
	ReadTime        int       `db:"read_time"`
	ViewCount       int       `db:"view_count"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`

	Content []Content `db:"-"`
	Tags    []string  `db:"-"`
}

type Content struct {
	ID          string      `db:"id"`
	BlogID      string      `db:"blog_id"`
	Type        ContentType `db:"type"`
	Order       int         `db:"order"`
	Title       string      `db:"title"`
	Description string      `db:"description"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`

	Images []ContentImage `db:"-"`
	Videos []ContentVideo `db:"-"`
}

type ContentImage struct {
	ID        string `db:"id"`
	ContentID string `db:"content_id"`
	URL       string `db:"url"`
	AltText   string `db:"alt_text"`
	Caption   string `db:"caption"`
	Order     int    `db:"order"`
}

type ContentVideo struct {
	ID           string `db:"id"`
	ContentID    string `db:"content_id"`
	URL          string `db:"url"`
	ThumbnailURL string `db:"thumbnail_url"`
	Title        string `db:"title"`
	Duration     int    `db:"duration"`
	Order        int    `db:"order"`
}

type Tag struct {
	Name      string `db:"name"`
	BlogCount int    `db:"blog_count"`
}

type BlogTag struct {
	BlogID  string `db:"blog_id"`
	TagName string `db:"tag_name"`
}
