package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/domain/products"
	"pet-adoption-portal/internal/ui"
)

const featuredCount = 3

// Landing es /: mascotas y productos destacados.
type Landing struct {
	base

	FeaturedPets     []pets.Registration
	FeaturedProducts []products.Product
}

func NewLanding(d Deps) *Landing {
	p := &Landing{}
	p.init(d)
	return p
}

// Mount trae mascotas y productos en paralelo; si falla cualquiera la página queda en failed.
func (p *Landing) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)

	c, cancel := p.scope(ctx)
	defer cancel()

	var (
		petList     []pets.Registration
		productList []products.Product
	)
	g, gctx := errgroup.WithContext(c)
	g.Go(func() error {
		var err error
		petList, err = p.API.ApprovedPets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		productList, err = p.API.Products(gctx)
		return err
	})

	if err := p.done(g.Wait(), "Failed to load featured items"); err != nil {
		return err
	}

	p.FeaturedPets = featuredPets(petList)
	p.FeaturedProducts = featuredProducts(productList)
	return nil
}

func featuredPets(list []pets.Registration) []pets.Registration {
	out := make([]pets.Registration, 0, featuredCount)
	for _, r := range list {
		if len(out) == featuredCount {
			break
		}
		if r.Adoptable() {
			out = append(out, r)
		}
	}
	return out
}

func featuredProducts(list []products.Product) []products.Product {
	out := make([]products.Product, 0, featuredCount)
	for _, pr := range list {
		if len(out) == featuredCount {
			break
		}
		if pr.Available() {
			out = append(out, pr)
		}
	}
	return out
}
