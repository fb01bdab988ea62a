package cart

import (
	"fmt"
	"sync"

	"github.com/tablelk/woodcraft-backend/internal/catalog"
	"github.com/tablelk/woodcraft-backend/internal/localdata"
	"github.com/tablelk/woodcraft-backend/internal/session"
)

const cartKey = "woodcraft_cart"

// State is the reconciliation phase the engine is in.
type State int

const (
	StateUninitialized State = iota
	// StateLocalOnly: anonymous session, operating purely on the locally
	// persisted cart.
	StateLocalOnly
	// StateSyncing: an identity just became present and the remote fetch is
	// in flight.
	StateSyncing
	// StateReconciled: remote and local carts are merged and consistent.
	StateReconciled
	// StateError: the remote fetch failed. The local cart stays authoritative
	// and every operation keeps working.
	StateError
)

func (s State) String() string {
	switch s {
	case StateLocalOnly:
		return "local-only"
	case StateSyncing:
		return "syncing"
	case StateReconciled:
		return "reconciled"
	case StateError:
		return "error"
	default:
		return "uninitialized"
	}
}

// Engine owns the authoritative cart for the current storefront session. It
// merges the locally persisted cart with the remote per-user cart when the
// identity changes, applies mutations local-first, and mirrors every mutation
// to the remote store while an identity is present.
//
// Remote failures never block or revert a local mutation; they are passed to
// the notify hook and the engine stays usable. Mutations and syncs run under
// one lock, so remote writes are serialized and the last issued mutation
// determines remote state.
type Engine struct {
	mu      sync.Mutex
	state   State
	current Snapshot
	userID  string

	catalog *catalog.Service
	local   *localdata.Store
	remote  RemoteRepository
	notify  func(error)
}

// NewEngine wires the engine to its collaborators. The catalog reference is
// injected here so line items can be resolved without reaching into shared
// state.
func NewEngine(cat *catalog.Service, local *localdata.Store, remote RemoteRepository) *Engine {
	return &Engine{
		state:   StateUninitialized,
		current: NewSnapshot([]LineItem{}),
		catalog: cat,
		local:   local,
		remote:  remote,
	}
}

// SetNotify registers the hook that receives non-fatal remote and storage
// errors.
func (e *Engine) SetNotify(fn func(error)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notify = fn
}

// Start loads the persisted local cart and enters LocalOnly. A missing or
// corrupt record yields an empty cart; totals are recomputed rather than
// trusted from disk, and stale product data is refreshed from the catalog.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	var stored Snapshot
	if ok := e.local.Load(cartKey, &stored); ok {
		e.current = NewSnapshot(e.resolveItems(toRemoteItems(stored.Items)))
	}
	e.state = StateLocalOnly
}

// HandleIdentityChange is the session store callback. An authenticated
// identity triggers the remote merge; going anonymous stops syncing but keeps
// the cart.
func (e *Engine) HandleIdentityChange(id session.Identity) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id.IsAnonymous() {
		e.userID = ""
		e.state = StateLocalOnly
		return
	}

	e.userID = id.ID
	e.state = StateSyncing

	remoteItems, err := e.remote.ListCartItems(e.userID)
	if err != nil {
		e.state = StateError
		e.report(fmt.Errorf("cart: fetch remote cart: %w", err))
		return
	}

	switch {
	case len(remoteItems) > 0:
		// Remote wins wholesale once populated; no line-level merge.
		e.current = NewSnapshot(e.resolveItems(remoteItems))
		e.persistLocal()
	case len(e.current.Items) > 0:
		// Remote is empty: push the in-progress local cart instead of
		// discarding it.
		e.pushRemote()
	}
	e.state = StateReconciled
}

// AddItem increments the existing line for the product or appends a new one.
func (e *Engine) AddItem(productID, qty int) (Snapshot, error) {
	p, err := e.catalog.GetByID(productID)
	if err != nil {
		return e.Current(), err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.apply(Action{Type: ActionAddItem, Product: p, Quantity: qty})
	return e.current, nil
}

// RemoveItem deletes the line for productID. Removing an absent product is a
// no-op, not an error.
func (e *Engine) RemoveItem(productID int) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.apply(Action{Type: ActionRemoveItem, ProductID: productID})
	return e.current
}

// UpdateQuantity replaces the quantity in place; qty <= 0 removes the line.
func (e *Engine) UpdateQuantity(productID, qty int) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.apply(Action{Type: ActionUpdateQuantity, ProductID: productID, Quantity: qty})
	return e.current
}

// Clear empties the cart. The remote sync pushes an explicit delete-all.
func (e *Engine) Clear() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.apply(Action{Type: ActionClear})
	return e.current
}

// Current returns the latest snapshot.
func (e *Engine) Current() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// State returns the reconciliation state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// apply runs a mutation: reduce, persist locally, mirror remotely when an
// identity is present. Callers hold e.mu.
func (e *Engine) apply(a Action) {
	e.current = Reduce(e.current, a)
	e.persistLocal()
	if e.userID != "" {
		e.pushRemote()
	}
}

// persistLocal writes the snapshot through to local storage. Callers hold
// e.mu.
func (e *Engine) persistLocal() {
	if err := e.local.Save(cartKey, e.current); err != nil {
		e.report(fmt.Errorf("cart: persist local cart: %w", err))
	}
}

// pushRemote replaces the user's remote cart with the current line items.
// Failures are reported, never rolled back. Callers hold e.mu.
func (e *Engine) pushRemote() {
	if err := e.remote.DeleteAllCartItems(e.userID); err != nil {
		e.report(fmt.Errorf("cart: clear remote cart: %w", err))
		return
	}
	items := toRemoteItems(e.current.Items)
	if len(items) == 0 {
		return
	}
	if err := e.remote.InsertCartItems(e.userID, items); err != nil {
		e.report(fmt.Errorf("cart: write remote cart: %w", err))
	}
}

// resolveItems turns remote rows back into line items using the catalog.
// Rows referencing unknown products or holding non-positive quantities are
// skipped so a stale remote row cannot poison the cart.
func (e *Engine) resolveItems(items []RemoteItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			continue
		}
		p, err := e.catalog.GetByID(it.ProductID)
		if err != nil {
			continue
		}
		out = append(out, LineItem{Product: p, Quantity: it.Quantity})
	}
	return out
}

func (e *Engine) report(err error) {
	if e.notify != nil {
		e.notify(err)
	}
}

func toRemoteItems(items []LineItem) []RemoteItem {
	out := make([]RemoteItem, 0, len(items))
	for _, it := range items {
		out = append(out, RemoteItem{ProductID: it.Product.ID, Quantity: it.Quantity})
	}
	return out
}
