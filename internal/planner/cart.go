package planner

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownProduct  = errors.New("product not in cart")
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
)

// CartLine is a shopping line together with the user's choices for it.
// UserQuantity is nil while the user has not overridden the computed
// package count.
type CartLine struct {
	Product      string          `json:"product"`
	Consumption  float64         `json:"consumption"`
	Packages     int64           `json:"packages"`
	Unit         string          `json:"unit"`
	Location     string          `json:"location,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Include      bool            `json:"include"`
	UserQuantity *int64          `json:"user_quantity,omitempty"`
}

// QuantityToBuy is the user's override or the computed package count.
func (l CartLine) QuantityToBuy() int64 {
	if l.UserQuantity != nil {
		return *l.UserQuantity
	}
	return l.Packages
}

// Cart is the session-owned selection. Version increases on every change.
type Cart struct {
	Version int64      `json:"version"`
	Lines   []CartLine `json:"lines"`
}

// Total is the estimated cost of the included lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		if l.Include {
			total = total.Add(l.Price.Mul(decimal.NewFromInt(l.QuantityToBuy())))
		}
	}
	return total
}

func (c Cart) line(product string) (CartLine, bool) {
	for _, l := range c.Lines {
		if l.Product == product {
			return l, true
		}
	}
	return CartLine{}, false
}

// Merge rebuilds the cart from freshly computed lines. Products that were
// already in prev keep their include flag and quantity override; new
// products start excluded; products no longer computed are dropped.
func Merge(lines []Line, prev Cart) Cart {
	next := Cart{Version: prev.Version + 1, Lines: make([]CartLine, len(lines))}
	for i, l := range lines {
		cl := CartLine{
			Product:     l.Product,
			Consumption: l.TotalNeeded,
			Packages:    l.Packages,
			Unit:        l.Unit,
			Location:    l.Location,
			Price:       l.Price,
		}
		if old, ok := prev.line(l.Product); ok {
			cl.Include = old.Include
			if old.UserQuantity != nil {
				q := *old.UserQuantity
				cl.UserQuantity = &q
			}
		}
		next.Lines[i] = cl
	}
	return next
}

// LineUpdate is a user edit of one cart line. Nil fields are left alone;
// ResetQuantity drops the override so the computed count applies again.
type LineUpdate struct {
	Include       *bool  `json:"include,omitempty"`
	Quantity      *int64 `json:"quantity,omitempty"`
	ResetQuantity bool   `json:"reset_quantity,omitempty"`
}

// Apply returns a copy of c with the update applied to product.
func (c Cart) Apply(product string, u LineUpdate) (Cart, error) {
	if u.Quantity != nil && *u.Quantity < 0 {
		return c, ErrInvalidQuantity
	}

	next := Cart{Version: c.Version + 1, Lines: make([]CartLine, len(c.Lines))}
	copy(next.Lines, c.Lines)
	for i, l := range next.Lines {
		if l.Product != product {
			continue
		}
		if u.Include != nil {
			l.Include = *u.Include
		}
		switch {
		case u.ResetQuantity:
			l.UserQuantity = nil
		case u.Quantity != nil:
			q := *u.Quantity
			l.UserQuantity = &q
		}
		next.Lines[i] = l
		return next, nil
	}
	return c, ErrUnknownProduct
}
