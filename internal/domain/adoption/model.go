package adoption

import (
	"strings"
	"time"
)

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

// Request es la solicitud de un adoptante sobre una mascota aprobada.
// La revisa el dueño de esa mascota.
type Request struct {
	ID             string    `json:"_id"`
	PetID          string    `json:"petId"`
	PetName        string    `json:"petName,omitempty"`
	AdopterName    string    `json:"adopterName"`
	AdopterEmail   string    `json:"adopterEmail"`
	AdopterPhone   string    `json:"adopterPhone"`
	Message        string    `json:"message,omitempty"`
	AdoptionStatus Status    `json:"adoptionStatus"`
	AdoptionDate   time.Time `json:"adoptionDate"`
}

// Filter filtra por estado; "" o "all" no filtra.
type Filter struct {
	Status string
}

func (f Filter) Apply(list []Request) []Request {
	st := strings.ToLower(strings.TrimSpace(f.Status))
	out := make([]Request, 0, len(list))
	for _, r := range list {
		if st != "" && st != "all" && string(r.AdoptionStatus) != st {
			continue
		}
		out = append(out, r)
	}
	return out
}
