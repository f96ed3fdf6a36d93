package session

import (
	"employabilityWeb/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewStore(Options{Name: "app-session", Secret: "test-session-secret", MaxAge: time.Hour})
	require.NoError(t, err)
	return store
}

// requestWithSession saves sess and returns a request carrying the resulting cookies.
func requestWithSession(t *testing.T, store *Store, sess models.Session) *http.Request {
	rr := httptest.NewRecorder()
	require.NoError(t, store.Save(rr, httptest.NewRequest(http.MethodGet, "/login", nil), sess))

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// requestWithRawValues bypasses Save to store arbitrary entries.
func requestWithRawValues(t *testing.T, store *Store, values map[string]string) *http.Request {
	rr := httptest.NewRecorder()
	base := httptest.NewRequest(http.MethodGet, "/login", nil)
	sess, err := store.store.Get(base, store.name)
	require.NoError(t, err)
	for k, v := range values {
		sess.Values[k] = v
	}
	require.NoError(t, sess.Save(base, rr))

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func signedToken(t *testing.T, secret string, exp time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u-1",
		"exp":    exp.Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestNewStoreRequiresSecret(t *testing.T) {
	_, err := NewStore(Options{Name: "app-session"})
	assert.Error(t, err)
}

func TestGuardCheck(t *testing.T) {
	store := newTestStore(t)
	guard := NewGuard(store, NewTokenChecker(""))

	admin := models.Session{Token: "opaque-token", User: models.User{UserID: "1", Email: "admin@hub.io", Role: models.RoleAdmin}}

	t.Run("no session record", func(t *testing.T) {
		sess, outcome := guard.Check(httptest.NewRequest(http.MethodGet, "/admin/jobs", nil), models.RoleAdmin)
		assert.Nil(t, sess)
		assert.Equal(t, AuthMissing, outcome)
	})

	t.Run("matching role", func(t *testing.T) {
		sess, outcome := guard.Check(requestWithSession(t, store, admin), models.RoleAdmin)
		require.NotNil(t, sess)
		assert.Equal(t, Allowed, outcome)
		assert.Equal(t, "admin@hub.io", sess.User.Email)
		assert.Equal(t, "opaque-token", sess.Token)
	})

	t.Run("role mismatch", func(t *testing.T) {
		student := admin
		student.User.Role = models.RoleStudent
		_, outcome := guard.Check(requestWithSession(t, store, student), models.RoleAdmin)
		assert.Equal(t, AuthForbidden, outcome)
	})

	t.Run("any role when none required", func(t *testing.T) {
		_, outcome := guard.Check(requestWithSession(t, store, admin))
		assert.Equal(t, Allowed, outcome)
	})

	t.Run("token without user record", func(t *testing.T) {
		req := requestWithRawValues(t, store, map[string]string{tokenKey: "opaque-token"})
		_, outcome := guard.Check(req, models.RoleAdmin)
		assert.Equal(t, AuthMissing, outcome)
	})

	t.Run("malformed user record", func(t *testing.T) {
		req := requestWithRawValues(t, store, map[string]string{tokenKey: "t", userKey: "{not json"})
		_, outcome := guard.Check(req, models.RoleAdmin)
		assert.Equal(t, AuthMissing, outcome)
	})

	t.Run("user record without role", func(t *testing.T) {
		req := requestWithRawValues(t, store, map[string]string{tokenKey: "t", userKey: `{"email":"a@b.c"}`})
		_, outcome := guard.Check(req, models.RoleAdmin)
		assert.Equal(t, AuthMissing, outcome)
	})

	t.Run("role is normalized", func(t *testing.T) {
		req := requestWithRawValues(t, store, map[string]string{tokenKey: "t", userKey: `{"email":"a@b.c","role":" Admin "}`})
		sess, outcome := guard.Check(req, models.RoleAdmin)
		assert.Equal(t, Allowed, outcome)
		assert.Equal(t, models.RoleAdmin, sess.User.Role)
	})

	t.Run("tampered cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
		req.AddCookie(&http.Cookie{Name: "app-session", Value: "garbage"})
		_, outcome := guard.Check(req, models.RoleAdmin)
		assert.Equal(t, AuthMissing, outcome)
	})
}

func TestGuardExpiredToken(t *testing.T) {
	store := newTestStore(t)

	expired := models.Session{
		Token: signedToken(t, "jwt-secret", time.Now().Add(-time.Minute)),
		User:  models.User{Email: "s@hub.io", Role: models.RoleStudent},
	}
	valid := models.Session{
		Token: signedToken(t, "jwt-secret", time.Now().Add(time.Hour)),
		User:  models.User{Email: "s@hub.io", Role: models.RoleStudent},
	}

	t.Run("unverified expiry", func(t *testing.T) {
		guard := NewGuard(store, NewTokenChecker(""))
		_, outcome := guard.Check(requestWithSession(t, store, expired), models.RoleStudent)
		assert.Equal(t, AuthMissing, outcome)

		_, outcome = guard.Check(requestWithSession(t, store, valid), models.RoleStudent)
		assert.Equal(t, Allowed, outcome)
	})

	t.Run("verified signature", func(t *testing.T) {
		guard := NewGuard(store, NewTokenChecker("jwt-secret"))
		_, outcome := guard.Check(requestWithSession(t, store, valid), models.RoleStudent)
		assert.Equal(t, Allowed, outcome)

		guard = NewGuard(store, NewTokenChecker("other-secret"))
		_, outcome = guard.Check(requestWithSession(t, store, valid), models.RoleStudent)
		assert.Equal(t, AuthMissing, outcome)
	})
}

func TestStoreClear(t *testing.T) {
	store := newTestStore(t)
	req := requestWithSession(t, store, models.Session{Token: "t", User: models.User{Email: "a@b.c", Role: models.RoleAdmin}})

	rr := httptest.NewRecorder()
	require.NoError(t, store.Clear(rr, req))

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "app-session", cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestStoreMaxAge(t *testing.T) {
	admin := models.Session{Token: "t", User: models.User{Email: "a@b.c", Role: models.RoleAdmin}}

	t.Run("longer than the codec default", func(t *testing.T) {
		store, err := NewStore(Options{Name: "app-session", Secret: "test-session-secret", MaxAge: 60 * 24 * time.Hour})
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		require.NoError(t, store.Save(rr, httptest.NewRequest(http.MethodGet, "/login", nil), admin))
		cookies := rr.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, 60*24*60*60, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, "/", cookies[0].Path)

		_, outcome := NewGuard(store, NewTokenChecker("")).Check(requestWithSession(t, store, admin), models.RoleAdmin)
		assert.Equal(t, Allowed, outcome)
	})

	t.Run("codec rejects cookies past max age", func(t *testing.T) {
		store, err := NewStore(Options{Name: "app-session", Secret: "test-session-secret", MaxAge: time.Second})
		require.NoError(t, err)
		guard := NewGuard(store, NewTokenChecker(""))

		req := requestWithSession(t, store, admin)
		_, outcome := guard.Check(req, models.RoleAdmin)
		require.Equal(t, Allowed, outcome)

		time.Sleep(2100 * time.Millisecond)
		// sessions are cached per request, so replay the cookies on a new one
		later := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
		for _, c := range req.Cookies() {
			later.AddCookie(c)
		}
		_, outcome = guard.Check(later, models.RoleAdmin)
		assert.Equal(t, AuthMissing, outcome)
	})
}

func TestFlashes(t *testing.T) {
	store := NewStoreWithBackend(sessions.NewCookieStore([]byte("flash-secret")), "app-session")

	rr := httptest.NewRecorder()
	store.AddFlash(rr, httptest.NewRequest(http.MethodPost, "/admin/jobs/1/approve", nil), "Job not found")

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}

	messages := store.Flashes(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"Job not found"}, messages)
}

func TestHomePath(t *testing.T) {
	assert.Equal(t, "/login", HomePath(nil))
	assert.Equal(t, "/admin/jobs", HomePath(&models.Session{User: models.User{Role: models.RoleAdmin}}))
	assert.Equal(t, "/student/dashboard", HomePath(&models.Session{User: models.User{Role: models.RoleStudent}}))
	assert.Equal(t, "/jobs", HomePath(&models.Session{User: models.User{Role: models.RoleEmployer}}))
}
