package adoption

import (
	"strings"

	"pet-adoption-portal/internal/validation"
)

// Form es el modal "Adopt" de la página de mascotas.
type Form struct {
	PetID        string `json:"petId" validate:"required"`
	AdopterName  string `json:"adopterName" validate:"required"`
	AdopterEmail string `json:"adopterEmail" validate:"required,email"`
	AdopterPhone string `json:"adopterPhone" validate:"required,phone"`
	Message      string `json:"message" validate:"max=1000"`
}

func (f Form) Normalized() Form {
	f.PetID = strings.TrimSpace(f.PetID)
	f.AdopterName = strings.TrimSpace(f.AdopterName)
	f.AdopterEmail = strings.ToLower(strings.TrimSpace(f.AdopterEmail))
	f.AdopterPhone = strings.TrimSpace(f.AdopterPhone)
	f.Message = strings.TrimSpace(f.Message)
	return f
}

// Validate corre antes de cualquier request: si falla no se llama a la API.
func (f Form) Validate() error {
	return validation.Struct(f.Normalized())
}
