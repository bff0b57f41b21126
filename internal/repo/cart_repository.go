package repo

import (
	"context"

	"github.com/nupl21/dieta-app/internal/planner"
)

// CartRepository keeps the cart of every planning session.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (planner.Cart, error)
	Save(ctx context.Context, sessionID string, cart planner.Cart) error
}
