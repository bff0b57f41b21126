package repo

import (
	"context"
	"sync"

	"github.com/nupl21/dieta-app/internal/planner"
)

// InMemoryCartRepository is an in-memory implementation of CartRepository.
type InMemoryCartRepository struct {
	mu    sync.Mutex
	carts map[string]planner.Cart
}

func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{carts: map[string]planner.Cart{}}
}

func (r *InMemoryCartRepository) Load(_ context.Context, sessionID string) (planner.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[sessionID]
	if !ok {
		return planner.Cart{}, ErrSessionNotFound
	}
	return cart, nil
}

func (r *InMemoryCartRepository) Save(_ context.Context, sessionID string, cart planner.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[sessionID] = cart
	return nil
}

func (r *InMemoryCartRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts = map[string]planner.Cart{}
}
