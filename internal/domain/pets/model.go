package pets

import (
	"strings"
	"time"
)

// Status es el estado de moderación de un registro.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// AdoptionStatus indica si la mascota ya fue adoptada.
type AdoptionStatus string

const (
	AdoptionAvailable AdoptionStatus = "available"
	AdoptionPending   AdoptionStatus = "pending"
	AdoptionAdopted   AdoptionStatus = "adopted"
)

// Type define las especies que ofrece el formulario.
type Type string

const (
	TypeDog    Type = "dog"
	TypeCat    Type = "cat"
	TypeBird   Type = "bird"
	TypeRabbit Type = "rabbit"
	TypeOther  Type = "other"
)

var Types = []Type{TypeDog, TypeCat, TypeBird, TypeRabbit, TypeOther}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Pet refleja lo que devuelve la API; el cliente no impone invariantes.
type Pet struct {
	Name        string   `json:"name"`
	Type        Type     `json:"type"`
	Breed       string   `json:"breed"`
	Age         *float64 `json:"age,omitempty"` // años decimales
	Gender      Gender   `json:"gender"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Vaccinated  bool     `json:"vaccinated"`
	Trained     bool     `json:"trained"`
	Photos      []string `json:"photos,omitempty"`
	License     string   `json:"license,omitempty"`
}

// Registration es dueño + mascota enviado para aprobación del admin.
type Registration struct {
	ID             string         `json:"_id"`
	Owner          Owner          `json:"owner"`
	Pet            Pet            `json:"pet"`
	Status         Status         `json:"status"`
	AdoptionStatus AdoptionStatus `json:"adoptionStatus,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// Adoptable: aprobada y todavía no adoptada.
func (r Registration) Adoptable() bool {
	return r.Status == StatusApproved && r.AdoptionStatus != AdoptionAdopted
}

// Photo devuelve la primera foto o "".
func (r Registration) Photo() string {
	if len(r.Pet.Photos) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Pet.Photos[0])
}
