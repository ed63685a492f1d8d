// Package session es la única fuente de identidad del cliente.
// Reemplaza la lectura ad hoc de storage desde cada pantalla: todos consumen un Provider.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrLoginRequired = errors.New("login required")
	ErrInvalidToken  = errors.New("session token is empty")
)

// Kind distingue cuentas regulares de cuentas de dueño de mascota.
// Son cuentas distintas en la API, pero comparten un solo esquema de sesión.
type Kind string

const (
	KindUser     Kind = "user"
	KindPetOwner Kind = "pet_owner"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Role     Role   `json:"role,omitempty"`
}

// DisplayName prioriza username, luego name, luego email.
func (i Identity) DisplayName() string {
	for _, s := range []string{i.Username, i.Name, i.Email} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return "guest"
}

type Session struct {
	Kind      Kind      `json:"kind"`
	Token     string    `json:"token"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin es una verificación de UX, no de seguridad: la API es la que autoriza.
// Si la identidad cacheada no trae rol, se lee el claim "role" del token sin verificar firma.
func (s Session) IsAdmin() bool {
	if s.Kind != KindUser {
		return false
	}
	if s.Identity.Role != "" {
		return s.Identity.Role == RoleAdmin
	}
	return roleClaim(s.Token) == RoleAdmin
}

func roleClaim(token string) Role {
	if strings.TrimSpace(token) == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return Role(role)
}

// Provider expone la sesión actual a toda la app.
type Provider struct {
	mu    sync.RWMutex
	store Store
	now   func() time.Time
}

func NewProvider(store Store) *Provider {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Provider{store: store, now: time.Now}
}

// CurrentUser devuelve la sesión activa, si hay. Un store ilegible cuenta como "sin sesión".
func (p *Provider) CurrentUser() (Session, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s, ok, err := p.store.Load()
	if err != nil || !ok || strings.TrimSpace(s.Token) == "" {
		return Session{}, false
	}
	return s, true
}

// SignIn reemplaza cualquier sesión previa (de cualquier tipo).
func (p *Provider) SignIn(s Session) error {
	if strings.TrimSpace(s.Token) == "" {
		return ErrInvalidToken
	}
	if s.Kind == "" {
		s.Kind = KindUser
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = p.now()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Save(s)
}

func (p *Provider) SignOut() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Clear()
}

// Gate exige una sesión de alguno de los tipos indicados (ninguno = cualquiera).
func (p *Provider) Gate(kinds ...Kind) (Session, error) {
	s, ok := p.CurrentUser()
	if !ok {
		return Session{}, ErrLoginRequired
	}
	if len(kinds) == 0 {
		return s, nil
	}
	for _, k := range kinds {
		if s.Kind == k {
			return s, nil
		}
	}
	return Session{}, ErrLoginRequired
}

// AuthHeader arma el header Authorization para la sesión actual (nil si no hay).
func (p *Provider) AuthHeader() map[string]string {
	s, ok := p.CurrentUser()
	if !ok {
		return nil
	}
	return BearerHeader(s.Token)
}

func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
