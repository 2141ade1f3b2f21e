package blob

import (
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
)

// PersonImageKey builds the canonical object key for a stored person
// photo. variant is "primary" or "secondary".
func PersonImageKey(personID int64, variant, sourceURL string) string {
	ext := extensionFromURL(sourceURL)
	return fmt.Sprintf("persons/%d_%s%s", personID, variant, ext)
}

func extensionFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".jpg"
	}
	ext := strings.ToLower(path.Ext(u.Path))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ".jpg"
	}
}

// ContentTypeForKey maps an object key to its content type, falling
// back to JPEG for unrecognized extensions.
func ContentTypeForKey(key string) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return "image/jpeg"
}
