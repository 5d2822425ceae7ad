package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGenerateFileName(t *testing.T) {
	u := New()

	tests := []struct {
		name         string
		contentType  string
		originalName string
		wantExt      string
	}{
		{
			name:        "known mime type wins",
			contentType: "image/png",
			wantExt:     ".png",
		},
		{
			name:        "mime type is case insensitive",
			contentType: "IMAGE/WEBP",
			wantExt:     ".webp",
		},
		{
			name:         "falls back to original extension",
			contentType:  "application/octet-stream",
			originalName: "holiday.jpeg",
			wantExt:      ".jpeg",
		},
		{
			name:        "defaults to jpg",
			contentType: "application/octet-stream",
			wantExt:     ".jpg",
		},
		{
			name:         "mime type beats original extension",
			contentType:  "image/gif",
			originalName: "banner.png",
			wantExt:      ".gif",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := u.GenerateFileName(tt.contentType, tt.originalName)

			assert.True(t, strings.HasPrefix(got, "image-"), "got %q", got)
			assert.True(t, strings.HasSuffix(got, tt.wantExt), "got %q", got)
		})
	}
}
