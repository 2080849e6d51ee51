// Package web holds the HTML templates and the engine that renders them.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"

	"videothingy/chapter-viewer/internal/viewstate"
)

//go:embed templates
var templateFS embed.FS

// Layout wraps every page.
const Layout = "layouts/main"

// ListPage is the binding of the "list" template.
type ListPage struct {
	Title string
	State viewstate.ListState
}

// DetailPage is the binding of the "detail" template.
type DetailPage struct {
	Title string
	State viewstate.DetailState
}

// ErrorPage is the binding of the "error" template, used for failures
// outside the two views (unknown routes, recovered panics).
type ErrorPage struct {
	Title   string
	Message string
}

// Thumbnails turns a segment's thumbnail reference into an image URL.
// Absolute URLs are kept; anything else is taken as an object path inside
// Bucket of the project's public storage.
type Thumbnails struct {
	StorageURL string
	Bucket     string
}

func (t Thumbnails) URL(ref string) string {
	if ref == "" || t.StorageURL == "" || isAbsolute(ref) {
		return ref
	}
	return strings.TrimSuffix(t.StorageURL, "/") + "/" + t.Bucket + "/" + strings.TrimPrefix(ref, "/")
}

func isAbsolute(ref string) bool {
	for _, p := range []string{"http://", "https://", "//", "data:"} {
		if strings.HasPrefix(ref, p) {
			return true
		}
	}
	return false
}

// FormatDate renders a creation timestamp the way the list shows it.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("1/2/2006")
}

// NewEngine parses the embedded templates and registers their helpers.
func NewEngine(thumbs Thumbnails) (*html.Engine, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("formatTime", viewstate.FormatTime)
	engine.AddFunc("formatDate", FormatDate)
	engine.AddFunc("thumb", thumbs.URL)
	if err := engine.Load(); err != nil {
		return nil, err
	}
	return engine, nil
}
