package accounts

import (
	"strings"

	"pet-adoption-portal/internal/validation"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// SignupForm es el formulario de /user-reg. ConfirmPassword no viaja a la API.
type SignupForm struct {
	Username        string `json:"username" validate:"required,min=3,max=30"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
}

func (f SignupForm) Normalized() SignupForm {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	return f
}

func (f SignupForm) Validate() error {
	err := validation.Struct(f.Normalized())
	if fe, ok := err.(validation.FieldErrors); ok {
		if msg, exists := fe["ConfirmPassword"]; exists {
			delete(fe, "ConfirmPassword")
			fe["confirmPassword"] = msg
		}
		return fe
	}
	return err
}

// LoginForm sirve para /login y /api/pets/login.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (f LoginForm) Normalized() LoginForm {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	return f
}

func (f LoginForm) Validate() error {
	return validation.Struct(f.Normalized())
}
