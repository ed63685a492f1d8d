package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"pet-adoption-portal/internal/domain/adoption"
	"pet-adoption-portal/internal/domain/cart"
	"pet-adoption-portal/internal/domain/orders"
	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/domain/products"
)

var (
	headerColor = color.New(color.Bold, color.FgCyan)
	errorColor  = color.New(color.FgRed, color.Bold)
	mutedColor  = color.New(color.Faint)
)

const maxColWidth = 40

func newTable(headers ...string) *uitable.Table {
	t := uitable.New()
	t.MaxColWidth = maxColWidth
	t.Wrap = true

	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = headerColor.Sprint(h)
	}
	t.AddRow(cells...)
	return t
}

func printTable(w io.Writer, t *uitable.Table, empty string) {
	// sólo el header
	if len(t.Rows) <= 1 {
		fmt.Fprintln(w, mutedColor.Sprint(empty))
		return
	}
	fmt.Fprintln(w, t)
}

func printPets(w io.Writer, list []pets.Registration) {
	t := newTable("ID", "NAME", "TYPE", "BREED", "AGE", "LOCATION", "AVAILABILITY")
	for _, r := range list {
		availability := "available"
		if !r.Adoptable() {
			availability = "adopted"
		}
		t.AddRow(r.ID, r.Pet.Name, r.Pet.Type, r.Pet.Breed, pets.AgeLabel(r.Pet.Age), r.Pet.Location, availability)
	}
	printTable(w, t, "No pets found")
}

func printRegistrations(w io.Writer, list []pets.Registration) {
	t := newTable("ID", "PET", "TYPE", "OWNER", "EMAIL", "STATUS", "SUBMITTED")
	for _, r := range list {
		t.AddRow(r.ID, r.Pet.Name, r.Pet.Type, r.Owner.Name, r.Owner.Email, r.Status, r.CreatedAt.Format("2006-01-02"))
	}
	printTable(w, t, "No registrations found")
}

func printRegistration(w io.Writer, r pets.Registration) {
	t := uitable.New()
	t.MaxColWidth = 60
	t.Wrap = true
	t.AddRow("Pet:", fmt.Sprintf("%s (%s, %s)", r.Pet.Name, r.Pet.Type, r.Pet.Breed))
	t.AddRow("Age:", pets.AgeLabel(r.Pet.Age))
	t.AddRow("Gender:", r.Pet.Gender)
	t.AddRow("Location:", r.Pet.Location)
	t.AddRow("Vaccinated:", yesNo(r.Pet.Vaccinated))
	t.AddRow("Trained:", yesNo(r.Pet.Trained))
	t.AddRow("About:", r.Pet.Description)
	if len(r.Pet.Photos) > 0 {
		t.AddRow("Photos:", strings.Join(r.Pet.Photos, ", "))
	}
	t.AddRow("Owner:", fmt.Sprintf("%s <%s> %s", r.Owner.Name, r.Owner.Email, r.Owner.Phone))
	t.AddRow("Status:", r.Status)
	if r.AdoptionStatus != "" {
		t.AddRow("Adoption:", r.AdoptionStatus)
	}
	fmt.Fprintln(w, t)
}

func printProducts(w io.Writer, list []products.Product) {
	t := newTable("ID", "PRODUCT", "CATEGORY", "BRAND", "PRICE", "STOCK", "RATING")
	for _, p := range list {
		stock := fmt.Sprintf("%d", p.Stock)
		if !p.Available() {
			stock = "out of stock"
		}
		t.AddRow(p.ID, p.ProductName, p.Category, p.Brand, "$"+p.Price.StringFixed(2), stock, fmt.Sprintf("%.1f", p.Rating))
	}
	printTable(w, t, "No products found")
}

func printRequests(w io.Writer, list []adoption.Request) {
	t := newTable("ID", "PET", "ADOPTER", "EMAIL", "PHONE", "MESSAGE", "STATUS", "DATE")
	for _, r := range list {
		t.AddRow(r.ID, r.PetName, r.AdopterName, r.AdopterEmail, r.AdopterPhone, r.Message, r.AdoptionStatus, r.AdoptionDate.Format("2006-01-02"))
	}
	printTable(w, t, "No adoption requests found")
}

func printLines(w io.Writer, lines []cart.Line) {
	t := newTable("PRODUCT", "QTY", "PRICE", "TOTAL")
	for _, l := range lines {
		t.AddRow(l.Product.ProductName, l.Quantity, "$"+l.Product.Price.StringFixed(2), "$"+l.Total().StringFixed(2))
	}
	printTable(w, t, "Your cart is empty")
}

func printSummary(w io.Writer, s orders.Summary) {
	t := uitable.New()
	t.AddRow("Items:", s.Items)
	t.AddRow("Subtotal:", "$"+s.Subtotal.StringFixed(2))
	shipping := "$" + s.Shipping.StringFixed(2)
	if s.FreeShipping() {
		shipping = "FREE"
	}
	t.AddRow("Shipping:", shipping)
	t.AddRow("Tax (10%):", "$"+s.Tax.StringFixed(2))
	t.AddRow("Total:", "$"+s.Total.StringFixed(2))
	fmt.Fprintln(w, t)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
