package contact

import (
	"strings"

	"pet-adoption-portal/internal/validation"
)

// Form es el formulario de /contact.
type Form struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=120"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

func (f Form) Normalized() Form {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
	return f
}

func (f Form) Validate() error {
	return validation.Struct(f.Normalized())
}
