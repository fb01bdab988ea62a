package cart

import "github.com/tablelk/woodcraft-backend/internal/catalog"

// LineItem pairs a catalog product with a quantity. Quantity is always >= 1;
// dropping to zero removes the line instead.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Snapshot is the cart state at a point in time. TotalItems and TotalPrice
// are derived and always equal a fresh recomputation from Items.
type Snapshot struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice int        `json:"totalPrice"`
}

// NewSnapshot builds a snapshot from items, computing the totals.
func NewSnapshot(items []LineItem) Snapshot {
	totalItems, totalPrice := computeTotals(items)
	return Snapshot{Items: items, TotalItems: totalItems, TotalPrice: totalPrice}
}

func computeTotals(items []LineItem) (totalItems, totalPrice int) {
	for _, it := range items {
		totalItems += it.Quantity
		totalPrice += it.Product.Price * it.Quantity
	}
	return totalItems, totalPrice
}

type ActionType int

const (
	ActionAddItem ActionType = iota
	ActionRemoveItem
	ActionUpdateQuantity
	ActionClear
	ActionSetCart
)

// Action is the tagged union the reducer dispatches over. Only the fields
// relevant to Type are read.
type Action struct {
	Type      ActionType
	Product   catalog.Product // AddItem
	ProductID int             // RemoveItem, UpdateQuantity
	Quantity  int             // AddItem, UpdateQuantity
	Items     []LineItem      // SetCart
}

// Reduce applies a to state and returns the new snapshot. It is pure: the
// input state is never mutated and identical inputs produce identical
// outputs. Totals are recomputed from scratch on every action so they cannot
// drift.
func Reduce(state Snapshot, a Action) Snapshot {
	switch a.Type {
	case ActionAddItem:
		items := copyItems(state.Items)
		found := false
		for i := range items {
			if items[i].Product.ID == a.Product.ID {
				items[i].Quantity += a.Quantity
				if items[i].Quantity <= 0 {
					items = append(items[:i], items[i+1:]...)
				}
				found = true
				break
			}
		}
		if !found && a.Quantity > 0 {
			items = append(items, LineItem{Product: a.Product, Quantity: a.Quantity})
		}
		return NewSnapshot(items)

	case ActionRemoveItem:
		items := make([]LineItem, 0, len(state.Items))
		for _, it := range state.Items {
			if it.Product.ID != a.ProductID {
				items = append(items, it)
			}
		}
		return NewSnapshot(items)

	case ActionUpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(state, Action{Type: ActionRemoveItem, ProductID: a.ProductID})
		}
		items := copyItems(state.Items)
		for i := range items {
			if items[i].Product.ID == a.ProductID {
				items[i].Quantity = a.Quantity
			}
		}
		return NewSnapshot(items)

	case ActionClear:
		return NewSnapshot([]LineItem{})

	case ActionSetCart:
		return NewSnapshot(copyItems(a.Items))

	default:
		return state
	}
}

func copyItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
