package pages

import (
	"pet-adoption-portal/internal/ui"
	"pet-adoption-portal/internal/ui/chrome"
	"pet-adoption-portal/internal/ui/router"
)

// Register arma la tabla de rutas de la app.
func Register(r *router.Router, d Deps, header *chrome.Header) {
	r.Handle("/", func() ui.Page { return NewLanding(d) })
	r.Handle("/pets", func() ui.Page { return NewPets(d) })
	r.Handle("/products", func() ui.Page { return NewProducts(d) })
	r.Handle("/order-summary", func() ui.Page { return NewOrderSummary(d) })
	r.Handle("/order-success", func() ui.Page { return NewOrderSuccess(d) })
	r.Handle("/contact", func() ui.Page { return NewContact(d) })
	r.Handle("/about", func() ui.Page { return NewAbout(d) })
	r.Handle("/adoption-requests", func() ui.Page { return NewAdoptionRequests(d) })
	r.Handle("/admin", func() ui.Page { return NewAdminDashboard(d) })
	r.Handle("/product-reg", func() ui.Page { return NewProductReg(d) })
	r.Handle("/pet-reg", func() ui.Page { return NewPetReg(d) })
	r.Handle("/user-reg", func() ui.Page { return NewUserReg(d) })
	r.Handle("/login", func() ui.Page { return NewUserLogin(d) })
	r.Handle("/pet-owner-login", func() ui.Page { return NewPetOwnerLogin(d) })
	r.Handle("/pet-owner-profile", func() ui.Page { return NewPetOwnerProfile(d, header) })
}
