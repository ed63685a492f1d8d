package api

import (
	"context"
	"net/http"

	"pet-adoption-portal/internal/domain/accounts"
)

// AuthResult es la respuesta de /register y /login.
type AuthResult struct {
	Success *bool         `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    accounts.User `json:"user"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, f accounts.SignupForm) (AuthResult, error) {
	f = f.Normalized()
	return authCall[AuthResult](ctx, c, "/register", signupRequest{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
	})
}

func (c *Client) Login(ctx context.Context, f accounts.LoginForm) (AuthResult, error) {
	return authCall[AuthResult](ctx, c, "/login", f.Normalized())
}

// OwnerAccount es la cuenta de dueño de mascota (namespace distinto a User en la API).
type OwnerAccount struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OwnerAuthResult struct {
	Success *bool        `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Owner   OwnerAccount `json:"owner"`
}

func (c *Client) OwnerLogin(ctx context.Context, f accounts.LoginForm) (OwnerAuthResult, error) {
	return authCall[OwnerAuthResult](ctx, c, "/api/pets/login", f.Normalized())
}

func (c *Client) OwnerLogout(ctx context.Context) error {
	_, _, err := call[struct{}](ctx, c, http.MethodGet, "/api/pets/logout", nil, true)
	return err
}

type authResponse interface {
	AuthResult | OwnerAuthResult
}

func authCall[T authResponse](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	resp, err := c.do(ctx, http.MethodPost, path, body, false)
	if err != nil {
		return out, err
	}
	if err := resp.Decode(&out); err != nil {
		return out, err
	}

	var success *bool
	var msg, token string
	switch v := any(out).(type) {
	case AuthResult:
		success, msg, token = v.Success, v.Message, v.Token
	case OwnerAuthResult:
		success, msg, token = v.Success, v.Message, v.Token
	}
	if success != nil && !*success {
		return out, &Error{Message: msg}
	}
	if token == "" {
		return out, &Error{Message: "login response did not include a token"}
	}
	return out, nil
}
