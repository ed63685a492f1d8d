package orders

import (
	"github.com/shopspring/decimal"

	"pet-adoption-portal/internal/domain/cart"
)

var (
	ShippingFee           = decimal.RequireFromString("9.99")
	FreeShippingThreshold = decimal.RequireFromString("50")
	TaxRate               = decimal.RequireFromString("0.10")
)

// Summary es el resumen que muestra /order-summary.
type Summary struct {
	Items    int             `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// FreeShipping: el envío se bonifica sólo por encima del umbral (50.00 exacto paga).
func (s Summary) FreeShipping() bool {
	return s.Shipping.IsZero()
}

func Summarize(lines []cart.Line) Summary {
	items := 0
	for _, l := range lines {
		items += l.Quantity
	}
	return SummarizeSubtotal(cart.Subtotal(lines), items)
}

func SummarizeSubtotal(subtotal decimal.Decimal, items int) Summary {
	subtotal = subtotal.Round(2)

	shipping := ShippingFee
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(TaxRate).Round(2)

	return Summary{
		Items:    items,
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
