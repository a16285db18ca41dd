package video

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Upload validation lists. Extension is checked against the declared
// filename, MIME type against the part's Content-Type header when present.
var allowedExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".ogg":  true,
}

var allowedMIMETypes = map[string]bool{
	"video/mp4":  true,
	"video/webm": true,
	"video/ogg":  true,
	// Some browsers send video files as this.
	"application/octet-stream": true,
}

func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

func AllowedMIMEType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType := contentType
	if i := strings.Index(contentType, ";"); i >= 0 {
		mediaType = contentType[:i]
	}
	return allowedMIMETypes[strings.TrimSpace(strings.ToLower(mediaType))]
}

// StoredFilename generates the on-disk name for an upload. Storage is keyed
// by a generated identifier, never the user-supplied name, so concurrent
// uploads of files with the same name cannot collide.
func StoredFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s%s", uuid.NewString(), ext)
}

// EnsureUploadDir creates the upload directory if it does not exist.
func EnsureUploadDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
