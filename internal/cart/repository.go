package cart

import "sync"

// RemoteItem is the per-user cart row as stored by the remote service. Only
// the product reference travels; products are resolved locally against the
// catalog.
type RemoteItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// RemoteRepository is the remote per-user cart store. Writes use
// delete-all-then-reinsert semantics: the engine always pushes its full
// line-item set.
type RemoteRepository interface {
	ListCartItems(userID string) ([]RemoteItem, error)
	DeleteAllCartItems(userID string) error
	InsertCartItems(userID string, items []RemoteItem) error
}

// InMemoryRepository is used by tests and local scenarios. ListErr and
// WriteErr force the corresponding operations to fail.
type InMemoryRepository struct {
	mu       sync.RWMutex
	carts    map[string][]RemoteItem
	ListErr  error
	WriteErr error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]RemoteItem)}
}

func (r *InMemoryRepository) ListCartItems(userID string) ([]RemoteItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	items := r.carts[userID]
	out := make([]RemoteItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *InMemoryRepository) DeleteAllCartItems(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.WriteErr != nil {
		return r.WriteErr
	}
	delete(r.carts, userID)
	return nil
}

func (r *InMemoryRepository) InsertCartItems(userID string, items []RemoteItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.WriteErr != nil {
		return r.WriteErr
	}
	stored := make([]RemoteItem, len(items))
	copy(stored, items)
	r.carts[userID] = append(r.carts[userID], stored...)
	return nil
}

// Seed replaces the stored cart for userID, bypassing error injection.
func (r *InMemoryRepository) Seed(userID string, items []RemoteItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]RemoteItem, len(items))
	copy(stored, items)
	r.carts[userID] = stored
}
