package session

import (
	"employabilityWeb/internal/models"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Outcome int

const (
	Allowed Outcome = iota
	AuthMissing
	AuthForbidden
)

func (o Outcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case AuthMissing:
		return "auth_missing"
	case AuthForbidden:
		return "auth_forbidden"
	}
	return "unknown"
}

var ErrMalformedRecord = errors.New("malformed session record")

// TokenChecker decides whether a stored auth token is still usable. The backend
// owns the token; with a secret the signature is verified, without one only
// the expiry claim is read.
type TokenChecker struct {
	secret []byte
	parser *jwt.Parser
}

func NewTokenChecker(secret string) *TokenChecker {
	return &TokenChecker{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithExpirationRequired()),
	}
}

func (c *TokenChecker) Check(tokenString string) error {
	if c == nil {
		return nil
	}

	if len(c.secret) == 0 {
		claims := jwt.MapClaims{}
		// opaque (non-JWT) tokens are left to the backend to judge
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil
		}
		exp, err := claims.GetExpirationTime()
		if err != nil {
			return fmt.Errorf("read token expiry: %w", err)
		}
		if exp != nil && !exp.After(time.Now()) {
			return jwt.ErrTokenExpired
		}
		return nil
	}

	token, err := c.parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}

// Guard gates pages on the stored session record.
type Guard struct {
	store  *Store
	tokens *TokenChecker
}

func NewGuard(store *Store, tokens *TokenChecker) *Guard {
	return &Guard{store: store, tokens: tokens}
}

func (g *Guard) Store() *Store {
	return g.store
}

// Check reads the session record and matches it against roles. With no roles
// any signed-in user is allowed.
func (g *Guard) Check(r *http.Request, roles ...models.Role) (*models.Session, Outcome) {
	token, record, err := g.store.load(r)
	if err != nil || token == "" || record == "" {
		return nil, AuthMissing
	}

	user, err := parseRecord(record)
	if err != nil {
		return nil, AuthMissing
	}

	if err := g.tokens.Check(token); err != nil {
		return nil, AuthMissing
	}

	sess := &models.Session{Token: token, User: *user}
	if len(roles) > 0 && !sess.HasRole(roles...) {
		return sess, AuthForbidden
	}
	return sess, Allowed
}

// parseRecord treats a record without a known role or without identity as absent.
func parseRecord(record string) (*models.User, error) {
	var user models.User
	if err := json.Unmarshal([]byte(record), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	user.Role = models.Role(strings.ToLower(strings.TrimSpace(string(user.Role))))
	if !user.Role.Valid() {
		return nil, fmt.Errorf("%w: role %q", ErrMalformedRecord, user.Role)
	}
	if strings.TrimSpace(user.Email) == "" && strings.TrimSpace(user.UserID) == "" {
		return nil, fmt.Errorf("%w: no identity", ErrMalformedRecord)
	}
	return &user, nil
}

// HomePath is where a signed-in user lands.
func HomePath(sess *models.Session) string {
	if sess == nil {
		return "/login"
	}
	switch sess.User.Role {
	case models.RoleAdmin:
		return "/admin/jobs"
	case models.RoleStudent:
		return "/student/dashboard"
	case models.RoleEmployer:
		return "/jobs"
	}
	return "/login"
}
