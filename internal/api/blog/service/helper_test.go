package blogService

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTagNames(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "lowercases and deduplicates",
			input:    []string{"Go", "go", "GO "},
			expected: []string{"go"},
		},
		{
			name:     "preserves first-seen order",
			input:    []string{"Web", "api", "web", "Go"},
			expected: []string{"web", "api", "go"},
		},
		{
			name:     "drops blanks",
			input:    []string{"", "  ", "go"},
			expected: []string{"go"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeTagNames(tt.input))
		})
	}
}

func TestStorageKey(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{
			name:     "full url with prefix",
			ref:      "https://bucket.s3.amazonaws.com/blog-images/image-123.jpg",
			expected: "image-123.jpg",
		},
		{
			name:     "prefixed key",
			ref:      "blog-images/image-123.jpg",
			expected: "image-123.jpg",
		},
		{
			name:     "bare key",
			ref:      "image-123.jpg",
			expected: "image-123.jpg",
		},
		{
			name:     "external url is skipped",
			ref:      "https://example.com/other.jpg",
			expected: "",
		},
		{
			name:     "empty",
			ref:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, storageKey(tt.ref))
		})
	}
}
