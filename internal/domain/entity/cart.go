package entity

import (
	"github.com/shopspring/decimal"
)

// CartStatus is the synchronization state of the cart provider.
type CartStatus string

const (
	CartStatusUnauthenticated CartStatus = "unauthenticated"
	CartStatusSyncing         CartStatus = "syncing"
	CartStatusReady           CartStatus = "ready"
)

// CartLine pairs a product with a quantity. Quantity is always >= 1.
type CartLine struct {
	ID       int64 // Server-side cart item id, 0 when unknown.
	Product  Product
	Quantity int
}

// Valid reports whether the line may be shown or totaled.
func (l CartLine) Valid() bool {
	return l.Product.ID > 0 && l.Quantity >= 1
}

// LineTotal returns Quantity × discounted unit price.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.DiscountedPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the remote cart as reported by the gateway.
type Cart struct {
	ID    int64
	Lines []CartLine
	Total decimal.Decimal // Server-computed total; informational only.
}

// CartState is an immutable snapshot of the cart provider.
type CartState struct {
	Lines     []CartLine
	ItemCount int
	Total     decimal.Decimal
	Status    CartStatus
}

// NewCartState drops invalid lines and derives ItemCount and Total.
func NewCartState(lines []CartLine, status CartStatus) CartState {
	state := CartState{
		Lines:  SanitizeLines(lines),
		Total:  decimal.Zero,
		Status: status,
	}
	for _, line := range state.Lines {
		state.ItemCount += line.Quantity
		state.Total = state.Total.Add(line.LineTotal())
	}

	return state
}

// SanitizeLines returns a copy of lines without entries lacking a product or with quantity < 1.
func SanitizeLines(lines []CartLine) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		if !line.Valid() {
			continue
		}
		out = append(out, line)
	}

	return out
}

// IsEmpty reports whether the snapshot holds no lines.
func (s CartState) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Line returns the line for productID.
func (s CartState) Line(productID int64) (CartLine, bool) {
	for _, line := range s.Lines {
		if line.Product.ID == productID {
			return line, true
		}
	}

	return CartLine{}, false
}

// Contains reports whether productID is in the cart.
func (s CartState) Contains(productID int64) bool {
	_, ok := s.Line(productID)

	return ok
}
