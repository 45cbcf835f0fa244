package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/aimanzahar/mealshare-web/appwrite"
)

// State is the observable session state of one browser context.
type State int

const (
	// StateLoading means the identity lookup has not resolved yet.
	StateLoading State = iota
	// StateAuthenticated means the auth service confirmed an identity.
	StateAuthenticated
	// StateAnonymous covers both "no session" and "lookup failed"; the
	// page renders them identically.
	StateAnonymous
)

// Snapshot is an immutable view of the watcher state.
type Snapshot struct {
	State         State
	User          *appwrite.User
	LogoutPending bool
}

// Loading reports whether the initial lookup is still in flight. It is
// distinct from LogoutPending so first-load spinners and logout-button
// busy state never get conflated.
func (s Snapshot) Loading() bool { return s.State == StateLoading }

// Watcher drives the session state for one view. The identity lookup runs
// asynchronously; once the owning view is done it calls Close, after which
// a late lookup result is dropped instead of mutating torn-down state.
type Watcher struct {
	account AccountAPI // nil when auth is unconfigured
	log     *zap.Logger

	mu            sync.Mutex
	closed        bool
	state         State
	user          *appwrite.User
	logoutPending bool
	done          chan struct{} // closed when the initial lookup resolves
}

// NewWatcher starts in StateLoading. account and log may be nil.
func NewWatcher(account AccountAPI, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{account: account, log: log, state: StateLoading, done: make(chan struct{})}
}

// Start kicks off the identity lookup. With no usable client the watcher
// settles to anonymous immediately, skipping the network call.
func (w *Watcher) Start(ctx context.Context) {
	if w.account == nil {
		w.resolve(StateAnonymous, nil)
		return
	}
	go func() {
		u, err := w.account.Get(ctx)
		if err != nil {
			// A 401 just means "no session"; anything else is a backend
			// problem the user never sees, so record it for operators.
			if !appwrite.IsUnauthorized(err) {
				w.log.Warn("identity lookup failed", zap.Error(err))
			}
			w.resolve(StateAnonymous, nil)
			return
		}
		w.resolve(StateAuthenticated, u)
	}()
}

func (w *Watcher) resolve(s State, u *appwrite.User) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.state != StateLoading {
		return
	}
	w.state, w.user = s, u
	close(w.done)
}

// Wait blocks until the lookup resolves or ctx is done, then reports the
// current state.
func (w *Watcher) Wait(ctx context.Context) Snapshot {
	select {
	case <-w.done:
	case <-ctx.Done():
	}
	return w.Snapshot()
}

// Snapshot returns the current state without blocking.
func (w *Watcher) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{State: w.state, User: w.user, LogoutPending: w.logoutPending}
}

// Logout terminates the remote session and forces local state to anonymous
// whatever the remote outcome, so the view can never stay stuck showing an
// authenticated user. Calling it outside StateAuthenticated is a no-op;
// terminating a session that no longer exists upstream is not an error.
func (w *Watcher) Logout(ctx context.Context) {
	w.mu.Lock()
	if w.closed || w.state != StateAuthenticated {
		w.mu.Unlock()
		return
	}
	w.logoutPending = true
	w.mu.Unlock()

	if w.account != nil {
		_ = w.account.DeleteCurrentSession(ctx) // best effort
	}

	w.mu.Lock()
	w.logoutPending = false
	if !w.closed {
		w.state, w.user = StateAnonymous, nil
	}
	w.mu.Unlock()
}

// Close detaches the watcher from its view. A lookup resolving afterwards
// is dropped; Close is idempotent.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}
