package pets

import "strings"

const filterAll = "all"

// Filter es el filtro de la página pública: tipo + búsqueda por nombre/raza.
// Todo ocurre en memoria sobre la lista ya traída.
type Filter struct {
	Type   string
	Search string
}

func (f Filter) Matches(r Registration) bool {
	t := strings.ToLower(strings.TrimSpace(f.Type))
	if t != "" && t != filterAll && !strings.EqualFold(string(r.Pet.Type), t) {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Pet.Name), q) ||
		strings.Contains(strings.ToLower(r.Pet.Breed), q)
}

func (f Filter) Apply(list []Registration) []Registration {
	out := make([]Registration, 0, len(list))
	for _, r := range list {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// StatusFilter es el filtro de los dashboards de moderación.
type StatusFilter struct {
	Status string
	Search string
}

func (f StatusFilter) Matches(r Registration) bool {
	st := strings.ToLower(strings.TrimSpace(f.Status))
	if st != "" && st != filterAll && string(r.Status) != st {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	for _, field := range []string{r.Pet.Name, r.Pet.Breed, r.Owner.Name, r.Owner.Email} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (f StatusFilter) Apply(list []Registration) []Registration {
	out := make([]Registration, 0, len(list))
	for _, r := range list {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// CountByStatus cuenta registros por estado (para las tarjetas del dashboard).
func CountByStatus(list []Registration) map[Status]int {
	out := map[Status]int{
		StatusPending:  0,
		StatusApproved: 0,
		StatusRejected: 0,
	}
	for _, r := range list {
		out[r.Status]++
	}
	return out
}
