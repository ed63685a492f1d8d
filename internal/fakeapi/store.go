package fakeapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"pet-adoption-portal/internal/domain/accounts"
	"pet-adoption-portal/internal/domain/adoption"
	"pet-adoption-portal/internal/domain/contact"
	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/domain/products"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrBadCredential = errors.New("invalid email or password")
	ErrUnavailable   = errors.New("pet is not available for adoption")
	ErrDuplicate     = errors.New("you already have a pending request for this pet")
	ErrForbidden     = errors.New("forbidden")
)

type userRecord struct {
	user accounts.User
	hash []byte
}

type ownerRecord struct {
	id             string
	owner          pets.Owner
	hash           []byte
	registrationID string
}

type requestRecord struct {
	req    adoption.Request
	userID string
}

// Store es el estado en memoria del backend falso.
type Store struct {
	mu sync.RWMutex

	users         map[string]userRecord
	owners        map[string]ownerRecord
	registrations map[string]pets.Registration
	products      map[string]products.Product
	requests      map[string]requestRecord
	contacts      []contact.Form

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:         make(map[string]userRecord),
		owners:        make(map[string]ownerRecord),
		registrations: make(map[string]pets.Registration),
		products:      make(map[string]products.Product),
		requests:      make(map[string]requestRecord),
		now:           time.Now,
	}
}

func hashPassword(pw string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
}

// -------------------------
// Users
// -------------------------

func (s *Store) CreateUser(username, email, password string, role accounts.Role) (accounts.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := hashPassword(password)
	if err != nil {
		return accounts.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.user.Email == email {
			return accounts.User{}, ErrEmailTaken
		}
	}
	if role == "" {
		role = accounts.RoleUser
	}
	u := accounts.User{ID: uuid.NewString(), Username: strings.TrimSpace(username), Email: email, Role: role}
	s.users[u.ID] = userRecord{user: u, hash: hash}
	return u, nil
}

func (s *Store) AuthenticateUser(email, password string) (accounts.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(u.hash, []byte(password)) != nil {
			return accounts.User{}, ErrBadCredential
		}
		return u.user, nil
	}
	return accounts.User{}, ErrBadCredential
}

// -------------------------
// Registrations / owners
// -------------------------

// CreateRegistration crea dueño + registro en estado pending.
func (s *Store) CreateRegistration(owner pets.Owner, password string, pet pets.Pet) (pets.Registration, error) {
	owner.Email = strings.ToLower(strings.TrimSpace(owner.Email))
	hash, err := hashPassword(password)
	if err != nil {
		return pets.Registration{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.owners {
		if o.owner.Email == owner.Email {
			return pets.Registration{}, ErrEmailTaken
		}
	}

	reg := pets.Registration{
		ID:             uuid.NewString(),
		Owner:          owner,
		Pet:            pet,
		Status:         pets.StatusPending,
		AdoptionStatus: pets.AdoptionAvailable,
		CreatedAt:      s.now(),
	}
	ownerID := uuid.NewString()
	s.owners[ownerID] = ownerRecord{id: ownerID, owner: owner, hash: hash, registrationID: reg.ID}
	s.registrations[reg.ID] = reg
	return reg, nil
}

func (s *Store) AuthenticateOwner(email, password string) (string, pets.Owner, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.owners {
		if o.owner.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(o.hash, []byte(password)) != nil {
			return "", pets.Owner{}, ErrBadCredential
		}
		return o.id, o.owner, nil
	}
	return "", pets.Owner{}, ErrBadCredential
}

func (s *Store) RegistrationOfOwner(ownerID string) (pets.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.owners[ownerID]
	if !ok {
		return pets.Registration{}, ErrNotFound
	}
	reg, ok := s.registrations[o.registrationID]
	if !ok {
		return pets.Registration{}, ErrNotFound
	}
	return reg, nil
}

func (s *Store) UpdatePet(ownerID string, pet pets.Pet) (pets.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.owners[ownerID]
	if !ok {
		return pets.Registration{}, ErrNotFound
	}
	reg, ok := s.registrations[o.registrationID]
	if !ok {
		return pets.Registration{}, ErrNotFound
	}
	reg.Pet = pet
	s.registrations[reg.ID] = reg
	return reg, nil
}

func (s *Store) UpdateOwner(ownerID string, owner pets.Owner) (pets.Registration, error) {
	owner.Email = strings.ToLower(strings.TrimSpace(owner.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.owners[ownerID]
	if !ok {
		return pets.Registration{}, ErrNotFound
	}
	for id, other := range s.owners {
		if id != ownerID && other.owner.Email == owner.Email {
			return pets.Registration{}, ErrEmailTaken
		}
	}
	reg, ok := s.registrations[o.registrationID]
	if !ok {
		return pets.Registration{}, ErrNotFound
	}

	o.owner = owner
	s.owners[ownerID] = o
	reg.Owner = owner
	s.registrations[reg.ID] = reg
	return reg, nil
}

func (s *Store) UpdateOwnerPassword(ownerID, current, next string) error {
	hash, err := hashPassword(next)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.owners[ownerID]
	if !ok {
		return ErrNotFound
	}
	if bcrypt.CompareHashAndPassword(o.hash, []byte(current)) != nil {
		return ErrBadCredential
	}
	o.hash = hash
	s.owners[ownerID] = o
	return nil
}

// Registrations devuelve los registros (todos si status == "") ordenados por fecha.
func (s *Store) Registrations(status pets.Status) []pets.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pets.Registration, 0, len(s.registrations))
	for _, r := range s.registrations {
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Pet.Name < out[j].Pet.Name
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *Store) SetRegistrationStatus(id string, st pets.Status) (pets.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.registrations[id]
	if !ok {
		return pets.Registration{}, ErrNotFound
	}
	reg.Status = st
	s.registrations[id] = reg
	return reg, nil
}

// DeleteRegistration borra registro, cuenta de dueño y solicitudes asociadas.
func (s *Store) DeleteRegistration(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registrations[id]; !ok {
		return ErrNotFound
	}
	delete(s.registrations, id)
	for oid, o := range s.owners {
		if o.registrationID == id {
			delete(s.owners, oid)
		}
	}
	for rid, r := range s.requests {
		if r.req.PetID == id {
			delete(s.requests, rid)
		}
	}
	return nil
}

// -------------------------
// Products
// -------------------------

func (s *Store) Products() []products.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]products.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out
}

func (s *Store) CreateProduct(p products.Product) products.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.InStock = p.InStock && p.Stock > 0
	s.products[p.ID] = p
	return p
}

type productPatch struct {
	Price   *decimal.Decimal `json:"price"`
	Stock   *int             `json:"stock"`
	InStock *bool            `json:"inStock"`
}

func (s *Store) PatchProduct(id string, patch productPatch) (products.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return products.Product{}, ErrNotFound
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
		p.InStock = p.Stock > 0
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock && p.Stock > 0
	}
	s.products[id] = p
	return p, nil
}

// -------------------------
// Adoption requests
// -------------------------

func (s *Store) CreateRequest(userID string, f adoption.Form) (adoption.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.registrations[f.PetID]
	if !ok {
		return adoption.Request{}, ErrNotFound
	}
	if !reg.Adoptable() {
		return adoption.Request{}, ErrUnavailable
	}
	for _, r := range s.requests {
		if r.userID == userID && r.req.PetID == f.PetID && r.req.AdoptionStatus == adoption.StatusPending {
			return adoption.Request{}, ErrDuplicate
		}
	}

	req := adoption.Request{
		ID:             uuid.NewString(),
		PetID:          reg.ID,
		PetName:        reg.Pet.Name,
		AdopterName:    f.AdopterName,
		AdopterEmail:   f.AdopterEmail,
		AdopterPhone:   f.AdopterPhone,
		Message:        f.Message,
		AdoptionStatus: adoption.StatusPending,
		AdoptionDate:   s.now(),
	}
	s.requests[req.ID] = requestRecord{req: req, userID: userID}
	return req, nil
}

// RequestsForOwner devuelve las solicitudes sobre la mascota del dueño.
func (s *Store) RequestsForOwner(ownerID string) ([]adoption.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.owners[ownerID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]adoption.Request, 0)
	for _, r := range s.requests {
		if r.req.PetID == o.registrationID {
			out = append(out, r.req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AdoptionDate.Before(out[j].AdoptionDate) })
	return out, nil
}

// DecideRequest aplica la decisión del dueño. Aprobar marca la mascota como adoptada
// y rechaza el resto de las solicitudes pendientes para esa mascota.
func (s *Store) DecideRequest(ownerID, requestID string, st adoption.Status) (adoption.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.requests[requestID]
	if !ok {
		return adoption.Request{}, ErrNotFound
	}
	o, ok := s.owners[ownerID]
	if !ok || o.registrationID != rec.req.PetID {
		return adoption.Request{}, ErrForbidden
	}

	rec.req.AdoptionStatus = st
	s.requests[requestID] = rec

	if st == adoption.StatusApproved {
		if reg, ok := s.registrations[rec.req.PetID]; ok {
			reg.AdoptionStatus = pets.AdoptionAdopted
			s.registrations[reg.ID] = reg
		}
		for id, other := range s.requests {
			if id != requestID && other.req.PetID == rec.req.PetID && other.req.AdoptionStatus == adoption.StatusPending {
				other.req.AdoptionStatus = adoption.StatusRejected
				s.requests[id] = other
			}
		}
	}
	return rec.req, nil
}

// RequestCount sirve a los tests para verificar que no hubo llamadas.
func (s *Store) RequestCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.requests)
}

// -------------------------
// Contact
// -------------------------

func (s *Store) AddContact(f contact.Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, f)
}

func (s *Store) Contacts() []contact.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]contact.Form, len(s.contacts))
	copy(out, s.contacts)
	return out
}
