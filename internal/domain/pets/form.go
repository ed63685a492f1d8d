package pets

import (
	"strings"

	"pet-adoption-portal/internal/validation"
)

type OwnerForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required,min=6"`
}

type PetForm struct {
	Name        string   `json:"name" validate:"required,max=50"`
	Type        Type     `json:"type" validate:"required,oneof=dog cat bird rabbit other"`
	Breed       string   `json:"breed" validate:"required"`
	Age         float64  `json:"age" validate:"gte=0,lte=30"`
	Gender      Gender   `json:"gender" validate:"required,oneof=male female"`
	Location    string   `json:"location" validate:"required"`
	Description string   `json:"description" validate:"required,max=1000"`
	Vaccinated  bool     `json:"vaccinated"`
	Trained     bool     `json:"trained"`
	Photos      []string `json:"photos" validate:"max=5,dive,url"`
	License     string   `json:"license"`
}

// RegistrationForm es el formulario de /pet-reg.
type RegistrationForm struct {
	Owner OwnerForm `json:"owner"`
	Pet   PetForm   `json:"pet"`
}

// RegistrationRequest es el body de POST /api/pets/register.
type RegistrationRequest struct {
	Owner OwnerForm `json:"owner"`
	Pet   Pet       `json:"pet"`
}

func (f RegistrationForm) Validate() error {
	return validation.Struct(f.normalized())
}

func (f RegistrationForm) Request() RegistrationRequest {
	n := f.normalized()
	return RegistrationRequest{Owner: n.Owner, Pet: n.Pet.toPet()}
}

func (f RegistrationForm) normalized() RegistrationForm {
	f.Owner.Name = strings.TrimSpace(f.Owner.Name)
	f.Owner.Email = strings.ToLower(strings.TrimSpace(f.Owner.Email))
	f.Owner.Phone = strings.TrimSpace(f.Owner.Phone)
	f.Pet = f.Pet.normalized()
	return f
}

func (f PetForm) Validate() error {
	return validation.Struct(f.normalized())
}

func (f PetForm) normalized() PetForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Type = Type(strings.ToLower(strings.TrimSpace(string(f.Type))))
	f.Breed = strings.TrimSpace(f.Breed)
	f.Gender = Gender(strings.ToLower(strings.TrimSpace(string(f.Gender))))
	f.Location = strings.TrimSpace(f.Location)
	f.Description = strings.TrimSpace(f.Description)
	f.License = strings.TrimSpace(f.License)

	photos := make([]string, 0, len(f.Photos))
	for _, p := range f.Photos {
		if p = strings.TrimSpace(p); p != "" {
			photos = append(photos, p)
		}
	}
	if len(photos) == 0 {
		photos = nil
	}
	f.Photos = photos
	return f
}

func (f PetForm) toPet() Pet {
	p := Pet{
		Name:        f.Name,
		Type:        f.Type,
		Breed:       f.Breed,
		Gender:      f.Gender,
		Location:    f.Location,
		Description: f.Description,
		Vaccinated:  f.Vaccinated,
		Trained:     f.Trained,
		Photos:      f.Photos,
		License:     f.License,
	}
	if f.Age > 0 {
		age := f.Age
		p.Age = &age
	}
	return p
}

// Pet devuelve la mascota normalizada lista para PATCH /api/pets/update-pet.
func (f PetForm) Pet() Pet {
	return f.normalized().toPet()
}

// FormFromPet precarga el formulario de edición.
func FormFromPet(p Pet) PetForm {
	f := PetForm{
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Gender:      p.Gender,
		Location:    p.Location,
		Description: p.Description,
		Vaccinated:  p.Vaccinated,
		Trained:     p.Trained,
		Photos:      append([]string(nil), p.Photos...),
		License:     p.License,
	}
	if p.Age != nil {
		f.Age = *p.Age
	}
	return f
}

// OwnerUpdateForm es el body de PATCH /api/pets/update-owner.
type OwnerUpdateForm struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
}

func (f OwnerUpdateForm) Normalized() OwnerUpdateForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)
	return f
}

func (f OwnerUpdateForm) Validate() error {
	return validation.Struct(f.Normalized())
}

// PasswordForm es el body de PATCH /api/pets/update-password (Confirm no viaja).
type PasswordForm struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,nefield=CurrentPassword"`
	ConfirmPassword string `json:"-" validate:"eqfield=NewPassword"`
}

func (f PasswordForm) Validate() error {
	err := validation.Struct(f)
	if err == nil {
		return nil
	}
	// ConfirmPassword no tiene nombre JSON; lo exponemos con uno estable.
	if fe, ok := err.(validation.FieldErrors); ok {
		if msg, exists := fe["ConfirmPassword"]; exists {
			delete(fe, "ConfirmPassword")
			fe["confirmPassword"] = msg
		}
		return fe
	}
	return err
}
