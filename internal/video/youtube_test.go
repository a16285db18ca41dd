package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/watch?v=abc123", "abc123"},
		{"https://m.youtube.com/watch?v=abc123&t=10s", "abc123"},
		{"https://youtu.be/abc123", "abc123"},
		// youtube.com without a v parameter is not a video link
		{"https://youtube.com/watch", ""},
		{"https://youtu.be/", ""},
		{"https://vimeo.com/123456", ""},
		{"https://example.com/watch?v=abc123", ""},
		{"not a url", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, YouTubeVideoID(tt.url))
			assert.Equal(t, tt.want != "", IsYouTubeURL(tt.url))
		})
	}
}
