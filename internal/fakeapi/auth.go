package fakeapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	kindUser  = "user"
	kindOwner = "pet_owner"

	roleOwner = "owner"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims representa la información extraída del token.
type Claims struct {
	Subject string
	Role    string
	Kind    string
	Token   string
}

type tokenClaims struct {
	Role string `json:"role"`
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// Tokens firma y verifica JWT HS256. Los tokens cerrados con logout quedan revocados.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]struct{}
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Tokens{
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
		revoked: make(map[string]struct{}),
	}
}

func (t *Tokens) Issue(subject, role, kind string) (string, error) {
	now := t.now()
	c := tokenClaims{
		Role: role,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

func (t *Tokens) Verify(token string) (Claims, error) {
	t.mu.Lock()
	_, gone := t.revoked[token]
	t.mu.Unlock()
	if gone {
		return Claims{}, ErrInvalidToken
	}

	var c tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if strings.TrimSpace(c.Subject) == "" {
		return Claims{}, ErrInvalidToken
	}
	return Claims{Subject: c.Subject, Role: c.Role, Kind: c.Kind, Token: token}, nil
}

func (t *Tokens) Revoke(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.revoked[token] = struct{}{}
}

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext: si viene Bearer válido setea claims. Si no, el request sigue igual
// y los handlers deciden 401/403.
func AuthContext(tokens *Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey).(Claims)
	return c, ok
}

// require corta con 401 sin claims del kind pedido, y 403 si falta el rol.
func require(kind, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := GetClaims(r.Context())
			if !ok || c.Kind != kind {
				fail(w, http.StatusUnauthorized, "Please log in to continue")
				return
			}
			if role != "" && c.Role != role {
				fail(w, http.StatusForbidden, "You are not allowed to do that")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(authHeader string) string {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
