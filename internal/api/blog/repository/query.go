package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			cover_image,
			meta_title,
			meta_description,
			read_time,
			view_count,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:cover_image,
			:meta_title,
			:meta_description,
			:read_time,
			:view_count,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			cover_image,
			meta_title,
			meta_description,
			read_time,
			view_count,
			created_at,
			updated_at
		FROM blogs
		WHERE id = :id
	`

	querySelectBlogs = `
		SELECT
			id,
			title,
			cover_image,
			meta_title,
			meta_description,
			read_time,
			view_count,
			created_at,
			updated_at
		FROM blogs
	`

	queryCountBlogs = `
		SELECT COUNT(*)
		FROM blogs
	`

	condBlogHasAnyTag = `
		EXISTS (
			SELECT 1
			FROM blog_tags
			WHERE blog_tags.blog_id = blogs.id
			AND blog_tags.tag_name IN (:tags)
		)
	`

	condBlogMatchesSearch = `
		(title ILIKE :search OR meta_title ILIKE :search OR meta_description ILIKE :search)
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			cover_image = CASE WHEN :cover_image = '' THEN cover_image ELSE :cover_image END,
			meta_title = CASE WHEN :meta_title = '' THEN meta_title ELSE :meta_title END,
			meta_description = CASE WHEN :meta_description = '' THEN meta_description ELSE :meta_description END,
			read_time = CASE WHEN :read_time = 0 THEN read_time ELSE :read_time END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryIncrementViewCount = `
		UPDATE blogs
		SET view_count = view_count + 1
		WHERE id = :id
	`

	queryCreateContent = `
		INSERT INTO contents (
			id,
			blog_id,
			type,
			"order",
			title,
			description,
			created_at,
			updated_at
		) VALUES (
			:id,
			:blog_id,
			:type,
			:order,
			:title,
			:description,
			:created_at,
			:updated_at
		)
	`

	queryCreateContentImages = `
		INSERT INTO content_images (
			id,
			content_id,
			url,
			alt_text,
			caption,
			"order"
		) VALUES (
			:id,
			:content_id,
			:url,
			:alt_text,
			:caption,
			:order
		)
	`

	queryCreateContentVideos = `
		INSERT INTO content_videos (
			id,
			content_id,
			url,
			thumbnail_url,
			title,
			duration,
			"order"
		) VALUES (
			:id,
			:content_id,
			:url,
			:thumbnail_url,
			:title,
			:duration,
			:order
		)
	`

	queryGetContentByID = `
		SELECT
			id,
			blog_id,
			type,
			"order",
			title,
			description,
			created_at,
			updated_at
		FROM contents
		WHERE id = :id
	`

	queryGetContentsByBlogIDs = `
		SELECT
			id,
			blog_id,
			type,
			"order",
			title,
			description,
			created_at,
			updated_at
		FROM contents
		WHERE blog_id IN (:blog_ids)
		ORDER BY blog_id, "order" ASC
	`

	queryGetImagesByContentIDs = `
		SELECT
			id,
			content_id,
			url,
			alt_text,
			caption,
			"order"
		FROM content_images
		WHERE content_id IN (:content_ids)
		ORDER BY content_id, "order" ASC
	`

	queryGetVideosByContentIDs = `
		SELECT
			id,
			content_id,
			url,
			thumbnail_url,
			title,
			duration,
			"order"
		FROM content_videos
		WHERE content_id IN (:content_ids)
		ORDER BY content_id, "order" ASC
	`

	queryUpdateContent = `
		UPDATE contents
		SET
			type = CASE WHEN :type = '' THEN type ELSE :type END,
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			description = CASE WHEN :description = '' THEN description ELSE :description END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateContentWithOrder = `
		UPDATE contents
		SET
			type = CASE WHEN :type = '' THEN type ELSE :type END,
			"order" = :order,
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			description = CASE WHEN :description = '' THEN description ELSE :description END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteContent = `
		DELETE FROM contents
		WHERE id = :id
	`

	queryUpsertTag = `
		INSERT INTO tags (name)
		VALUES (:name)
		ON CONFLICT (name) DO NOTHING
	`

	queryCreateBlogTags = `
		INSERT INTO blog_tags (blog_id, tag_name)
		VALUES (:blog_id, :tag_name)
		ON CONFLICT (blog_id, tag_name) DO NOTHING
	`

	queryDeleteBlogTags = `
		DELETE FROM blog_tags
		WHERE blog_id = :blog_id
		AND tag_name IN (:tag_names)
	`

	queryGetTagsByBlogID = `
		SELECT tag_name
		FROM blog_tags
		WHERE blog_id = :blog_id
		ORDER BY tag_name ASC
	`

	queryGetBlogTags = `
		SELECT blog_id, tag_name
		FROM blog_tags
		WHERE blog_id IN (:blog_ids)
		ORDER BY blog_id, tag_name ASC
	`

	queryGetAllTags = `
		SELECT
			tags.name,
			COUNT(blog_tags.blog_id) AS blog_count
		FROM tags
		LEFT JOIN blog_tags ON blog_tags.tag_name = tags.name
		GROUP BY tags.name
		ORDER BY tags.name ASC
	`
)
