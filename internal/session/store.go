package session

import (
	"sync"

	"github.com/tablelk/woodcraft-backend/internal/localdata"
)

const identityKey = "woodcraft_auth"

type persistedSession struct {
	Identity Identity `json:"identity"`
	Token    string   `json:"token"`
}

// Store tracks the current identity for this storefront instance. It is a
// thin adapter over the remote Provider: sign-in/out mutate the remote
// service, the store keeps only the latest known identity, a loading flag and
// the change subscribers.
type Store struct {
	mu       sync.Mutex
	provider Provider
	local    *localdata.Store
	current  Identity
	token    string
	loading  bool
	handlers []func(Identity)
}

func NewStore(provider Provider, local *localdata.Store) *Store {
	return &Store{provider: provider, local: local}
}

// Current returns the signed-in identity, or the zero value when anonymous.
func (s *Store) Current() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Token returns the provider token for the current session, or "".
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Loading reports whether a session check or sign-in is still in flight.
// Cart reconciliation is suppressed while it is true.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// OnChange registers fn to run whenever the identity transitions between
// anonymous and authenticated or its profile fields change.
func (s *Store) OnChange(fn func(Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, fn)
}

// Restore replays a persisted session at startup. The stored identity is
// trusted as-is; the provider is only asked to refresh profile fields, and a
// failure there keeps the persisted copy (the remote store stays opaque and
// non-fatal).
func (s *Store) Restore() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var p persistedSession
	if ok := s.local.Load(identityKey, &p); !ok || p.Identity.IsAnonymous() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return
	}

	if p.Token != "" {
		if sess, err := s.provider.GetSession(p.Token); err == nil {
			p.Identity = sess.Identity
		}
	}

	s.mu.Lock()
	s.current = p.Identity
	s.token = p.Token
	s.loading = false
	s.mu.Unlock()
	s.persist()
	s.fire()
}

func (s *Store) SignIn(email, password string) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	sess, err := s.provider.SignInWithPassword(email, password)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.current = sess.Identity
	s.token = sess.Token
	s.mu.Unlock()

	s.persist()
	s.fire()
	return nil
}

// SignUp creates the account but leaves the store anonymous; the account is
// pending confirmation until the user signs in.
func (s *Store) SignUp(profile Profile) error {
	_, err := s.provider.SignUp(profile)
	return err
}

// SignOut always clears the local identity. A remote failure is returned for
// reporting but does not keep the user signed in.
func (s *Store) SignOut() error {
	s.mu.Lock()
	token := s.token
	s.current = Identity{}
	s.token = ""
	s.mu.Unlock()

	s.persist()
	s.fire()

	return s.provider.SignOut(token)
}

// persist writes the current session to local storage. Write errors are
// swallowed like the rest of the local-storage layer.
func (s *Store) persist() {
	s.mu.Lock()
	p := persistedSession{Identity: s.current, Token: s.token}
	s.mu.Unlock()
	_ = s.local.Save(identityKey, p)
}

// fire invokes subscribers outside the lock so they may call back into the
// store.
func (s *Store) fire() {
	s.mu.Lock()
	id := s.current
	handlers := make([]func(Identity), len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	for _, fn := range handlers {
		fn(id)
	}
}
