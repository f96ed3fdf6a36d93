package handlers

import (
	"bytes"
	"context"
	"embed"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/session"
	"employabilityWeb/internal/view"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"login.html",
	"admin_jobs.html",
	"admin_job.html",
	"admin_posts.html",
	"courses.html",
	"dashboard.html",
	"jobs.html",
	"confirm.html",
	"error.html",
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006")
	},
	"plural": plural,
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() *renderer {
	r := &renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		r.pages[name] = template.Must(template.New(name).Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return r
}

// page is what every template receives.
type page struct {
	Title   string
	User    *models.User
	Flashes []string
	Error   string
	Data    any
}

// pager is the prev/next block under paginated lists.
type pager struct {
	Page    int
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

func newPager(c *view.Controller, path string) pager {
	return pager{
		Page:    c.Query().Page,
		HasPrev: c.HasPrev(),
		HasNext: c.HasNext(),
		PrevURL: c.PrevURL(path),
		NextURL: c.NextURL(path),
	}
}

// render executes the page into a buffer first so a template failure becomes a
// clean 500 instead of half a page.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	tmpl, ok := h.pages.pages[name]
	if !ok {
		log.Printf("render: unknown page %s", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if sess := session.FromContext(r.Context()); sess != nil && p.User == nil {
		user := sess.User
		p.User = &user
	}
	if h.Sessions != nil {
		p.Flashes = append(p.Flashes, h.Sessions.Flashes(w, r)...)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

type invalidateKey struct{}

// redirectInvalidator re-fetches a list by sending the browser back to it.
// The redirect to run is carried by the request context.
var redirectInvalidator = view.InvalidatorFunc(func(ctx context.Context) error {
	if redirect, ok := ctx.Value(invalidateKey{}).(func()); ok {
		redirect()
	}
	return nil
})

func withInvalidate(ctx context.Context, redirect func()) context.Context {
	return context.WithValue(ctx, invalidateKey{}, redirect)
}
