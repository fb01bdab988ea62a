package catalog

import "errors"

var ErrNotFound = errors.New("product not found")

// Repository provides read access to the product dataset. The catalog is
// loaded once at startup and never mutated afterwards.
type Repository interface {
	List() []Product
	GetByID(id int) (Product, error)
}

// InMemoryRepository holds the static catalog. It is read-only after
// construction, so no locking is needed.
type InMemoryRepository struct {
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

// List returns the products in catalog insertion order.
func (r *InMemoryRepository) List() []Product {
	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}
