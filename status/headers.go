package status

import (
	"net/http"
	"strings"
	"time"
)

// ParseLastModified parses an HTTP Last-Modified header value.
// Accepts the RFC 1123, RFC 850, and ANSI C formats HTTP allows.
func ParseLastModified(headerValue string) (time.Time, bool) {
	if headerValue == "" {
		return time.Time{}, false
	}
	t, err := http.ParseTime(headerValue)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractContentType returns the media type from a header map,
// case-insensitive on the key and with parameters stripped.
func ExtractContentType(headers map[string]string) (string, bool) {
	for key, value := range headers {
		if strings.EqualFold(key, "content-type") {
			mediaType, _, _ := strings.Cut(value, ";")
			return strings.TrimSpace(mediaType), true
		}
	}
	return "", false
}

// IsHTMLContent reports whether a media type is HTML.
func IsHTMLContent(contentType string) bool {
	switch strings.ToLower(contentType) {
	case "text/html", "application/xhtml+xml":
		return true
	default:
		return false
	}
}
