package session

import (
	"context"
	"crypto/sha256"
	"employabilityWeb/internal/models"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	tokenKey = "token"
	userKey  = "user"

	flashSuffix = "-flash"
)

type Options struct {
	Name   string
	Secret string
	MaxAge time.Duration
	Secure bool
}

// Store keeps the auth token and the JSON user record in one signed,
// encrypted cookie session.
type Store struct {
	store sessions.Store
	name  string
}

func NewStore(opts Options) (*Store, error) {
	if opts.Secret == "" {
		return nil, fmt.Errorf("session secret is empty")
	}
	if opts.Name == "" {
		opts.Name = "app-session"
	}

	// securecookie wants a 32 byte key for AES-256
	hashKey := []byte(opts.Secret)
	blockKey := sha256.Sum256([]byte(opts.Secret))

	cookieStore := sessions.NewCookieStore(hashKey, blockKey[:])
	// MaxAge also moves the codecs' own limit, which defaults to 30 days
	cookieStore.MaxAge(int(opts.MaxAge.Seconds()))
	cookieStore.Options.Path = "/"
	cookieStore.Options.HttpOnly = true
	cookieStore.Options.Secure = opts.Secure
	cookieStore.Options.SameSite = http.SameSiteLaxMode

	return &Store{store: cookieStore, name: opts.Name}, nil
}

// NewStoreWithBackend lets tests plug in any gorilla sessions.Store.
func NewStoreWithBackend(store sessions.Store, name string) *Store {
	return &Store{store: store, name: name}
}

// GenerateSecret returns a random secret suitable for SESSION_SECRET.
func GenerateSecret() string {
	return fmt.Sprintf("%x", securecookie.GenerateRandomKey(32))
}

// Save writes both entries of the session record.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, sess models.Session) error {
	record, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}

	appSession, err := s.store.Get(r, s.name)
	if err != nil && appSession == nil {
		return fmt.Errorf("load session: %w", err)
	}
	appSession.Values[tokenKey] = sess.Token
	appSession.Values[userKey] = string(record)

	if err := appSession.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes both entries together.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	appSession, _ := s.store.Get(r, s.name)
	if appSession == nil {
		return nil
	}
	delete(appSession.Values, tokenKey)
	delete(appSession.Values, userKey)
	appSession.Options.MaxAge = -1
	return appSession.Save(r, w)
}

// load returns the raw entries. Missing entries come back empty.
func (s *Store) load(r *http.Request) (token string, record string, err error) {
	appSession, err := s.store.Get(r, s.name)
	if appSession == nil {
		return "", "", err
	}
	// a cookie that fails to decode is treated like no cookie
	if err != nil {
		return "", "", nil
	}
	token, _ = appSession.Values[tokenKey].(string)
	record, _ = appSession.Values[userKey].(string)
	return token, record, nil
}

func (s *Store) AddFlash(w http.ResponseWriter, r *http.Request, message string) {
	flash, _ := s.store.Get(r, s.name+flashSuffix)
	if flash == nil {
		return
	}
	flash.AddFlash(message)
	_ = flash.Save(r, w)
}

// Flashes pops pending flash messages.
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) []string {
	flash, _ := s.store.Get(r, s.name+flashSuffix)
	if flash == nil {
		return nil
	}
	values := flash.Flashes()
	if len(values) == 0 {
		return nil
	}
	_ = flash.Save(r, w)

	messages := make([]string, 0, len(values))
	for _, v := range values {
		if msg, ok := v.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

type sessionKey struct{}

func WithSession(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

func FromContext(ctx context.Context) *models.Session {
	sess, _ := ctx.Value(sessionKey{}).(*models.Session)
	return sess
}
