package utils

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// SplitURIComponents splits an absolute URI path into its components.
// Trailing slashes are ignored; the root path yields an empty slice. Paths
// not starting with "/" are rejected.
func SplitURIComponents(uri string) ([]string, error) {
	if uri == "" || uri[0] != '/' {
		return nil, fmt.Errorf("URI %q is not absolute", uri)
	}

	components := make([]string, 0)
	for _, part := range strings.Split(uri, "/") {
		if part != "" {
			components = append(components, part)
		}
	}
	return components, nil
}

// FlattenURI joins URI components back into an absolute path.
func FlattenURI(components []string) string {
	return "/" + strings.Join(components, "/")
}

// IsChildURI reports whether uri lies under base (a URI is a child of
// itself).
func IsChildURI(base, uri []string) bool {
	if len(uri) < len(base) {
		return false
	}
	for i := range base {
		if uri[i] != base[i] {
			return false
		}
	}
	return true
}

// mimeTypes maps lower-case file extensions to content types for the file
// serving surface.
var mimeTypes = map[string]string{
	".css":  "text/css",
	".gif":  "image/gif",
	".html": "text/html",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".js":   "application/javascript",
	".json": "application/json",
	".pdf":  "application/pdf",
	".png":  "image/png",
	".txt":  "text/plain",
	".xml":  "text/xml",
}

// DetectMimeType maps a filename to a content type by extension. It returns
// the empty string for unknown or missing extensions; callers decide on a
// fallback.
func DetectMimeType(name string) string {
	return mimeTypes[strings.ToLower(path.Ext(name))]
}

// IsUUID reports whether s is a canonical 36-character UUID string.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
