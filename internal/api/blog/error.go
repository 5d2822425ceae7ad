package blogs

import "BlogGolang/pkg/response"

var (
	ErrBlogNotFound         = response.NewError(404, "blog not found")
	ErrContentNotFound      = response.NewError(404, "content not found")
	ErrTitleRequired        = response.NewError(400, "title is required")
	ErrInvalidContentType   = response.NewError(400, "invalid content type")
	ErrTextContentHasMedia  = response.NewError(400, "TEXT content cannot carry images or videos")
	ErrCreateBlog           = response.NewError(500, "failed to create blog")
	ErrUpdateBlog           = response.NewError(500, "failed to update blog")
	ErrDeleteBlog           = response.NewError(500, "failed to delete blog")
	ErrCreateContent        = response.NewError(500, "failed to add content to blog")
	ErrUpdateTagAssociation = response.NewError(500, "failed to update blog tags")
)
