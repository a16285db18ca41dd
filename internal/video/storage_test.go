package video

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension("clip.mp4"))
	assert.True(t, AllowedExtension("CLIP.MP4"))
	assert.True(t, AllowedExtension("match.webm"))
	assert.True(t, AllowedExtension("training.ogg"))
	assert.False(t, AllowedExtension("virus.exe"))
	assert.False(t, AllowedExtension("clip.mov"))
	assert.False(t, AllowedExtension("noextension"))
	assert.False(t, AllowedExtension(""))
}

func TestAllowedMIMEType(t *testing.T) {
	assert.True(t, AllowedMIMEType("video/mp4"))
	assert.True(t, AllowedMIMEType("video/webm"))
	assert.True(t, AllowedMIMEType("application/octet-stream"))
	assert.True(t, AllowedMIMEType("video/mp4; codecs=avc1"))
	// No declared type is tolerated; the extension check still applies.
	assert.True(t, AllowedMIMEType(""))
	assert.False(t, AllowedMIMEType("text/html"))
	assert.False(t, AllowedMIMEType("application/x-msdownload"))
}

func TestStoredFilename(t *testing.T) {
	a := StoredFilename("match.mp4")
	b := StoredFilename("match.mp4")

	assert.True(t, strings.HasSuffix(a, ".mp4"))
	assert.NotEqual(t, a, b, "two uploads of the same name must not collide")
	assert.NotContains(t, a, "match")
	assert.NotContains(t, a, "/")
}
