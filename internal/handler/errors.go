package handlers

import (
	"employabilityWeb/internal/repository"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// writeJSON is used by the few non-HTML endpoints.
func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// userMessage turns err into the text shown in a banner or flash.
func userMessage(err error) string {
	return repository.MessageOf(err)
}

// statusFor maps a backend failure to the status of the rendered page.
func statusFor(err error) int {
	var reqErr *repository.RequestError
	if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusOK
}

func (h *Handlers) flashError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	h.Sessions.AddFlash(w, r, userMessage(err))
}

// returnURL accepts only local paths under prefix so a posted form cannot
// redirect off-site.
func returnURL(raw, prefix string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || raw == "" || u.IsAbs() || u.Host != "" || strings.HasPrefix(raw, "//") || !strings.HasPrefix(u.Path, prefix) {
		return prefix
	}
	return u.RequestURI()
}

func (h *Handlers) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "error.html", page{
		Title: "Not found",
		Error: "The page you asked for does not exist.",
	})
}
