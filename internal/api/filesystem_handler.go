package api

import (
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vinayvenu/orthanc/pkg/utils"
)

// FilesystemHandler serves the files below a root directory over GET,
// optionally listing directory content.
type FilesystemHandler struct {
	root                 string
	listDirectoryContent bool
}

// NewFilesystemHandler creates a handler rooted at root, which must be an
// existing directory.
func NewFilesystemHandler(root string, listDirectoryContent bool) (*FilesystemHandler, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("the path %q does not point to a directory", root)
	}

	return &FilesystemHandler{
		root:                 root,
		listDirectoryContent: listDirectoryContent,
	}, nil
}

// Routes returns the router for the file serving endpoints.
func (h *FilesystemHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})
	r.Get("/*", h.Serve)
	return r
}

// Serve answers one GET request below the root directory.
func (h *FilesystemHandler) Serve(w http.ResponseWriter, r *http.Request) {
	components, err := utils.SplitURIComponents("/" + chi.URLParam(r, "*"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	// Reject any path escaping the root.
	for _, c := range components {
		if c == "." || c == ".." {
			http.NotFound(w, r)
			return
		}
	}

	target := filepath.Join(append([]string{h.root}, components...)...)

	info, err := os.Stat(target)
	switch {
	case err == nil && info.Mode().IsRegular():
		h.serveFile(w, r, target)

	case err == nil && info.IsDir() && h.listDirectoryContent:
		h.serveDirectory(w, r, target, components)

	default:
		http.NotFound(w, r)
	}
}

func (h *FilesystemHandler) serveFile(w http.ResponseWriter, r *http.Request, target string) {
	f, err := os.Open(target)
	if err != nil {
		slog.Error("Failed to open served file", "path", target, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	contentType := utils.DetectMimeType(target)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	if _, err := io.Copy(w, f); err != nil {
		slog.Error("Failed to send served file", "path", target, "error", err)
	}
}

// serveDirectory renders the directory as HTML, subdirectories first, then
// regular files, each linking to its own URI.
func (h *FilesystemHandler) serveDirectory(w http.ResponseWriter, r *http.Request, target string, components []string) {
	entries, err := os.ReadDir(target)
	if err != nil {
		slog.Error("Failed to list served directory", "path", target, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	// Links are absolute, so they must carry any prefix the handler is
	// mounted under, not just the path below it.
	base := strings.TrimSuffix(r.URL.Path, "/")

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, "<html>\n  <body>\n    <h1>Subdirectories</h1>\n    <ul>\n")

	if len(components) > 0 {
		fmt.Fprintf(w, "<li><a href=\"%s/..\">..</a></li>\n", base)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			name := html.EscapeString(entry.Name())
			fmt.Fprintf(w, "<li><a href=\"%s/%s\">%s</a></li>\n", base, name, name)
		}
	}

	fmt.Fprint(w, "    </ul>\n    <h1>Files</h1>\n    <ul>\n")
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			name := html.EscapeString(entry.Name())
			fmt.Fprintf(w, "<li><a href=\"%s/%s\">%s</a></li>\n", base, name, name)
		}
	}
	fmt.Fprint(w, "    </ul>\n  </body>\n</html>\n")
}
