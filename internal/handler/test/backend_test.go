package test

import (
	"encoding/json"
	"employabilityWeb/internal/config"
	handlers "employabilityWeb/internal/handler"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/repository"
	"employabilityWeb/internal/service"
	"employabilityWeb/internal/session"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeBackend stands in for the REST API and records every call it gets.
type fakeBackend struct {
	mu      sync.Mutex
	routes  map[string]http.HandlerFunc
	hits    map[string]int
	queries map[string]url.Values
	bodies  map[string]map[string]any
	headers map[string]http.Header
	server  *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	b := &fakeBackend{
		routes:  make(map[string]http.HandlerFunc),
		hits:    make(map[string]int),
		queries: make(map[string]url.Values),
		bodies:  make(map[string]map[string]any),
		headers: make(map[string]http.Header),
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")

	var body map[string]any
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	b.mu.Lock()
	b.hits[key]++
	b.queries[key] = r.URL.Query()
	b.bodies[key] = body
	b.headers[key] = r.Header.Clone()
	route, ok := b.routes[key]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no route " + key})
		return
	}
	route(w, r)
}

// on registers a canned JSON response for "METHOD /path".
func (b *fakeBackend) on(key string, status int, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(payload)
	}
}

// handle registers a custom handler for "METHOD /path".
func (b *fakeBackend) handle(key string, fn http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = fn
}

func (b *fakeBackend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key]
}

func (b *fakeBackend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.hits {
		n += c
	}
	return n
}

func (b *fakeBackend) query(key string) url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queries[key]
}

func (b *fakeBackend) body(key string) map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func (b *fakeBackend) header(key string) http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.headers[key]
}

type testEnv struct {
	backend *fakeBackend
	router  http.Handler
	store   *session.Store
}

func newTestEnv(t *testing.T) *testEnv {
	backend := newFakeBackend(t)
	cfg := &config.Config{PageSize: 10}

	client := repository.NewClient(backend.server.URL+"/api", backend.server.Client())
	services := service.NewService(repository.NewRepository(client), cfg, nil)

	store, err := session.NewStore(session.Options{Name: "app-session", Secret: "handler-test-secret", MaxAge: time.Hour})
	require.NoError(t, err)
	guard := session.NewGuard(store, session.NewTokenChecker(""))

	h := handlers.NewHandlers(services, guard, cfg)
	return &testEnv{backend: backend, router: h.Router(), store: store}
}

// signIn returns the cookies of a stored session with the given role.
func (e *testEnv) signIn(t *testing.T, role models.Role) []*http.Cookie {
	rr := httptest.NewRecorder()
	sess := models.Session{Token: "token-" + string(role), User: models.User{UserID: "u-" + string(role), Email: string(role) + "@hub.io", Name: "Test " + string(role), Role: role}}
	require.NoError(t, e.store.Save(rr, httptest.NewRequest(http.MethodPost, "/login", nil), sess))
	return rr.Result().Cookies()
}

func (e *testEnv) get(target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) post(target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// withResponseCookies adds the cookies set by rr, replacing same-named ones.
func withResponseCookies(cookies []*http.Cookie, rr *httptest.ResponseRecorder) []*http.Cookie {
	merged := map[string]*http.Cookie{}
	for _, c := range cookies {
		merged[c.Name] = c
	}
	for _, c := range rr.Result().Cookies() {
		merged[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(merged))
	for _, c := range merged {
		out = append(out, c)
	}
	return out
}

func jobJSON(id, status string) map[string]any {
	return map[string]any{
		"id":       id,
		"title":    "Job " + id,
		"status":   status,
		"location": "Remote",
		"jobType":  "full-time",
		"employer": map[string]any{"id": "e1", "companyName": "Acme"},
		"skills":   []string{"go", "sql"},
	}
}
