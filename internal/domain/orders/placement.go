package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-adoption-portal/internal/domain/cart"
)

var ErrEmptyOrder = errors.New("cart is empty")

// Confirmation es lo que recibe /order-success.
type Confirmation struct {
	OrderNumber string      `json:"orderNumber"`
	Lines       []cart.Line `json:"lines"`
	Summary     Summary     `json:"summary"`
	PlacedAt    time.Time   `json:"placedAt"`
}

// Placer simula la colocación de la orden: espera un timer y confirma.
// No hay pago ni persistencia.
type Placer struct {
	delay time.Duration
	now   func() time.Time
	after func(time.Duration) <-chan time.Time
	newID func() string
}

func NewPlacer(delay time.Duration) *Placer {
	if delay < 0 {
		delay = 0
	}
	return &Placer{
		delay: delay,
		now:   time.Now,
		after: time.After,
		newID: func() string {
			return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
		},
	}
}

// Place respeta la cancelación de ctx (p.ej. si el usuario navega antes de que termine).
func (p *Placer) Place(ctx context.Context, lines []cart.Line) (Confirmation, error) {
	if len(lines) == 0 {
		return Confirmation{}, ErrEmptyOrder
	}

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return Confirmation{}, ctx.Err()
		case <-p.after(p.delay):
		}
	} else if err := ctx.Err(); err != nil {
		return Confirmation{}, err
	}

	cp := make([]cart.Line, len(lines))
	copy(cp, lines)
	return Confirmation{
		OrderNumber: p.newID(),
		Lines:       cp,
		Summary:     Summarize(cp),
		PlacedAt:    p.now(),
	}, nil
}
