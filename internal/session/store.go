package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gcunha/taskdeck/internal/domain"
	"github.com/gcunha/taskdeck/internal/notify"
	"github.com/gcunha/taskdeck/internal/redact"
	"github.com/gcunha/taskdeck/internal/token"
)

// Authenticator exchanges credentials for a bearer token. Implemented
// by the API client; injected so the store can be tested without a
// network.
type Authenticator interface {
	Authenticate(ctx context.Context, creds domain.LoginRequest) (string, error)
}

// Store owns the authentication state for the whole process. It is the
// only component allowed to mutate the session. Lifecycle: New → Init
// (once) → any number of Login/Logout → Close.
type Store struct {
	auth     Authenticator
	storage  Storage
	notifier notify.Notifier
	log      *slog.Logger

	// timeFunc is injectable for testing.
	timeFunc func() time.Time

	mu           sync.Mutex
	current      Session
	initializing bool
	initialized  bool
	closed       bool

	// One timer slot. timerGen invalidates outstanding callbacks:
	// every disarm bumps the generation, so a stale timer that already
	// left time.AfterFunc can never log out a newer session.
	timer    *time.Timer
	timerGen uint64

	onChange []func(Session)
}

// New creates a Store. It performs no I/O; call Init to restore a
// persisted session.
func New(auth Authenticator, storage Storage, notifier notify.Notifier, log *slog.Logger) *Store {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		auth:         auth,
		storage:      storage,
		notifier:     notifier,
		log:          log,
		timeFunc:     time.Now,
		initializing: true,
	}
}

// OnChange registers a callback fired after every session transition
// (login or logout), with the new snapshot. Callbacks run outside the
// store's lock and must not block for long.
func (s *Store) OnChange(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Current returns a snapshot of the session state.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Initializing reports whether the one-time restore step has not yet
// completed.
func (s *Store) Initializing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initializing
}

// IsAuthenticated reports whether a session is current.
func (s *Store) IsAuthenticated() bool {
	return s.Current().IsAuthenticated()
}

// Init restores the persisted session, if any. A record that is
// absent, empty, unparseable, or already past its recorded expiry is
// discarded and the store becomes ready with no session. Init runs its
// restore logic once; later calls return the current snapshot.
func (s *Store) Init() Session {
	s.mu.Lock()
	if s.initialized {
		cur := s.current
		s.mu.Unlock()
		return cur
	}
	s.initialized = true
	s.initializing = false

	rec, found, err := s.storage.Load()
	switch {
	case err != nil:
		// Corrupt record: discard it.
		s.log.Warn("discarding unreadable session record", "error", redact.Error(err))
		_ = s.storage.Clear()
	case !found || rec.Token == "":
		// Nothing persisted.
	case rec.ExpiresAt > 0 && rec.ExpiresAt <= s.timeFunc().UnixMilli():
		s.log.Info("persisted session already expired, discarding",
			"identity", rec.Identity)
		_ = s.storage.Clear()
	default:
		s.current = Session{
			Token:     rec.Token,
			Identity:  rec.Identity,
			ExpiresAt: rec.ExpiresAt,
		}
		s.log.Info("session restored",
			"identity", rec.Identity,
			"token", redact.Token(rec.Token),
			"has_expiry", rec.ExpiresAt > 0)
	}

	fireNow := s.armWatchdogLocked()
	cur := s.current
	s.mu.Unlock()

	if fireNow {
		// Deadline passed between persisting and restoring; no
		// authenticated window may be observable.
		s.Logout(ReasonExpired, nil)
		return s.Current()
	}
	return cur
}

// Login calls the authentication endpoint and, on success, replaces
// the current session, persists it, and arms the expiry watchdog.
// Endpoint errors propagate unchanged and leave the state untouched.
func (s *Store) Login(ctx context.Context, creds domain.LoginRequest) (Session, error) {
	if err := creds.Validate(); err != nil {
		return Session{}, err
	}

	tok, err := s.auth.Authenticate(ctx, creds)
	if err != nil {
		return Session{}, err
	}

	next := Session{Token: tok, Identity: creds.Email}
	if ms, ok := token.DecodeExpiration(tok); ok {
		next.ExpiresAt = ms
	}

	s.mu.Lock()
	s.initializing = false
	s.initialized = true
	s.current = next
	if err := s.storage.Save(Record{
		Token:     next.Token,
		Identity:  next.Identity,
		ExpiresAt: next.ExpiresAt,
	}); err != nil {
		// The in-memory session is still valid for this process.
		s.log.Warn("failed to persist session", "error", redact.Error(err))
	}
	fireNow := s.armWatchdogLocked()
	s.mu.Unlock()

	s.log.Info("login succeeded",
		"identity", next.Identity,
		"token", redact.Token(next.Token),
		"has_expiry", next.HasExpiry())
	s.fireChange(next)

	if fireNow {
		// The token arrived already expired; the logout pre-empts any
		// authenticated window and the caller sees the cleared state.
		s.Logout(ReasonExpired, nil)
		return s.Current(), nil
	}
	return next, nil
}

// Logout clears the in-memory and persisted state unconditionally and
// disarms the watchdog. It is idempotent: repeated calls leave the
// state anonymous and do not fail. A notification is emitted with the
// reason's default message (or opts.Message) unless opts.Silent.
func (s *Store) Logout(reason LogoutReason, opts *LogoutOptions) {
	s.mu.Lock()
	wasAuthenticated := s.current.IsAuthenticated()
	identity := s.current.Identity
	s.current = Session{}
	s.initializing = false
	s.initialized = true
	s.stopTimerLocked()
	_ = s.storage.Clear()
	s.mu.Unlock()

	if wasAuthenticated {
		s.log.Info("logged out", "reason", string(reason), "identity", identity)
		s.fireChange(Session{})
	}

	if opts != nil && opts.Silent {
		return
	}
	message := reason.defaultMessage()
	if opts != nil && opts.Message != "" {
		message = opts.Message
	}
	if reason == ReasonManual {
		s.notifier.Success(message)
	} else {
		s.notifier.Error(message)
	}
}

// Close tears the store down, disarming any pending watchdog. The
// persisted record is left as is.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopTimerLocked()
}

// armWatchdogLocked replaces the timer slot for the current session.
// Returns true when the deadline is already past, in which case the
// caller must perform the expired logout itself after releasing the
// lock. Caller must hold s.mu.
func (s *Store) armWatchdogLocked() bool {
	s.stopTimerLocked()

	sess := s.current
	if s.closed || !sess.IsAuthenticated() || !sess.HasExpiry() {
		return false
	}

	remaining := sess.ExpiresIn(s.timeFunc())
	if remaining <= 0 {
		return true
	}

	gen := s.timerGen
	s.timer = time.AfterFunc(remaining, func() {
		s.watchdogFired(gen)
	})
	s.log.Debug("expiry watchdog armed",
		"identity", sess.Identity,
		"expires_in", remaining.String())
	return false
}

// stopTimerLocked disarms the timer slot and invalidates any callback
// that may already be in flight. Caller must hold s.mu.
func (s *Store) stopTimerLocked() {
	s.timerGen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// watchdogFired runs on the timer goroutine. The generation check
// drops callbacks belonging to a replaced or cleared session.
func (s *Store) watchdogFired(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.timerGen {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.Logout(ReasonExpired, nil)
}

// fireChange invokes the registered callbacks outside the lock.
func (s *Store) fireChange(snapshot Session) {
	s.mu.Lock()
	callbacks := make([]func(Session), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(snapshot)
	}
}
