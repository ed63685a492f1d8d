package fakeapi

import (
	"time"

	"github.com/shopspring/decimal"

	"pet-adoption-portal/internal/domain/accounts"
	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/domain/products"
)

// Credenciales de los datos de ejemplo.
const (
	SeedAdminEmail    = "admin@petnest.test"
	SeedAdminPassword = "admin123"
	SeedUserEmail     = "ada@petnest.test"
	SeedUserPassword  = "adopt123"
	SeedOwnerEmail    = "grace@petnest.test"
	SeedOwnerPassword = "owner123"
	SeedPendingEmail  = "linus@petnest.test"
)

func age(v float64) *float64 { return &v }

// Seed carga usuarios, registros (aprobados y pendientes) y productos.
func Seed(s *Store) error {
	if _, err := s.CreateUser("admin", SeedAdminEmail, SeedAdminPassword, accounts.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.CreateUser("ada", SeedUserEmail, SeedUserPassword, accounts.RoleUser); err != nil {
		return err
	}

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	regs := []struct {
		owner  pets.Owner
		pet    pets.Pet
		status pets.Status
	}{
		{
			owner:  pets.Owner{Name: "Grace Hopper", Email: SeedOwnerEmail, Phone: "+1 555 010 2030"},
			pet:    pets.Pet{Name: "Biscuit", Type: pets.TypeDog, Breed: "Beagle", Age: age(2), Gender: pets.GenderMale, Location: "Austin, TX", Description: "Friendly beagle who loves long walks.", Vaccinated: true, Trained: true},
			status: pets.StatusApproved,
		},
		{
			owner:  pets.Owner{Name: "Alan Turing", Email: "alan@petnest.test", Phone: "555-010-4050"},
			pet:    pets.Pet{Name: "Whiskers", Type: pets.TypeCat, Breed: "Tabby", Age: age(0.5), Gender: pets.GenderFemale, Location: "Denver, CO", Description: "Curious kitten, litter trained.", Vaccinated: true},
			status: pets.StatusApproved,
		},
		{
			owner:  pets.Owner{Name: "Barbara Liskov", Email: "barbara@petnest.test", Phone: "(555) 010-6070"},
			pet:    pets.Pet{Name: "Kiwi", Type: pets.TypeBird, Breed: "Parakeet", Age: age(1.5), Gender: pets.GenderMale, Location: "Portland, OR", Description: "Chatty parakeet that whistles tunes."},
			status: pets.StatusApproved,
		},
		{
			owner:  pets.Owner{Name: "Ken Thompson", Email: "ken@petnest.test", Phone: "555.010.8090"},
			pet:    pets.Pet{Name: "Clover", Type: pets.TypeRabbit, Breed: "Holland Lop", Gender: pets.GenderFemale, Location: "Austin, TX", Description: "Gentle bunny, enjoys being held."},
			status: pets.StatusApproved,
		},
		{
			owner:  pets.Owner{Name: "Linus Torvalds", Email: SeedPendingEmail, Phone: "5550109010"},
			pet:    pets.Pet{Name: "Pixel", Type: pets.TypeDog, Breed: "Husky", Age: age(4), Gender: pets.GenderMale, Location: "Seattle, WA", Description: "Energetic husky, needs a yard."},
			status: pets.StatusPending,
		},
	}

	for i, r := range regs {
		s.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		reg, err := s.CreateRegistration(r.owner, SeedOwnerPassword, r.pet)
		if err != nil {
			return err
		}
		if r.status != pets.StatusPending {
			if _, err := s.SetRegistrationStatus(reg.ID, r.status); err != nil {
				return err
			}
		}
	}
	s.now = time.Now

	for _, p := range []products.Product{
		{ProductName: "Chew Rope", Category: "toys", Brand: "PawPlay", Description: "Durable cotton rope toy.", Price: decimal.RequireFromString("12.50"), Stock: 20, InStock: true, Rating: 4.5},
		{ProductName: "Grain-Free Kibble", Category: "food", Brand: "NutriPet", Description: "5kg bag of grain-free dog food.", Price: decimal.RequireFromString("39.99"), Stock: 8, InStock: true, Rating: 4.8},
		{ProductName: "Cozy Bed", Category: "beds", Brand: "SnoozeCo", Description: "Orthopedic bed for medium pets.", Price: decimal.RequireFromString("54.00"), Stock: 3, InStock: true, Rating: 4.2},
		{ProductName: "Feather Wand", Category: "toys", Brand: "PawPlay", Description: "Interactive cat teaser.", Price: decimal.RequireFromString("7.25"), Stock: 0, InStock: false, Rating: 4.0},
	} {
		s.CreateProduct(p)
	}
	return nil
}
