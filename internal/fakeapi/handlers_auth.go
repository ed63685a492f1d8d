package fakeapi

import (
	"errors"
	"net/http"

	"pet-adoption-portal/internal/domain/accounts"
	"pet-adoption-portal/internal/validation"
)

type authResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token,omitempty"`
	User    accounts.User `json:"user"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decode(r, &req) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := firstError(validation.Struct(req)); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}

	u, err := s.store.CreateUser(req.Username, req.Email, req.Password, accounts.RoleUser)
	if errors.Is(err, ErrEmailTaken) {
		fail(w, http.StatusConflict, "An account with this email already exists")
		return
	}
	if err != nil {
		fail(w, http.StatusInternalServerError, "could not create account")
		return
	}

	token, err := s.tokens.Issue(u.ID, string(u.Role), kindUser)
	if err != nil {
		fail(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Success: true, Message: "Registration successful", Token: token, User: u})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req accounts.LoginForm
	if !decode(r, &req) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := s.store.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := s.tokens.Issue(u.ID, string(u.Role), kindUser)
	if err != nil {
		fail(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Success: true, Message: "Login successful", Token: token, User: u})
}

type ownerAccount struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ownerAuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	Owner   ownerAccount `json:"owner"`
}

func (s *Server) ownerLogin(w http.ResponseWriter, r *http.Request) {
	var req accounts.LoginForm
	if !decode(r, &req) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}

	id, owner, err := s.store.AuthenticateOwner(req.Email, req.Password)
	if err != nil {
		fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := s.tokens.Issue(id, roleOwner, kindOwner)
	if err != nil {
		fail(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, ownerAuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		Owner:   ownerAccount{ID: id, Name: owner.Name, Email: owner.Email, Phone: owner.Phone},
	})
}

func (s *Server) ownerLogout(w http.ResponseWriter, r *http.Request) {
	c, _ := GetClaims(r.Context())
	s.tokens.Revoke(c.Token)
	ok(w, http.StatusOK, "Logged out successfully", nil)
}

// firstError devuelve el primer mensaje de validación o "".
func firstError(err error) string {
	if err == nil {
		return ""
	}
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return fe.First()
	}
	return err.Error()
}
