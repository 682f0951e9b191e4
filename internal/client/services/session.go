package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/avatar"
	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/notify"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// SessionStore holds the current user and performs the session operations.
//
// The store is safe for concurrent use. Overlapping operations are not
// serialized: whichever response settles last decides the held user.
type SessionStore struct {
	client   client.Client
	notifier notify.Notifier
	logger   logging.Logger
	stage    func(path string, maxBytes int64) (string, error)
	maxImage int64

	mu      sync.RWMutex
	user    *models.User
	pending int

	bootOnce sync.Once
}

type Option func(*SessionStore)

func WithLogger(l logging.Logger) Option {
	return func(s *SessionStore) { s.logger = l }
}

// WithMaxAvatarBytes caps the size of images staged by UpdateAvatar.
func WithMaxAvatarBytes(n int64) Option {
	return func(s *SessionStore) { s.maxImage = n }
}

// NewSessionStore creates a store with no user. A nil notifier drops
// notifications.
func NewSessionStore(c client.Client, n notify.Notifier, opts ...Option) *SessionStore {
	if n == nil {
		n = notify.Fanout{}
	}
	s := &SessionStore{
		client:   c,
		notifier: n,
		logger:   logging.Nop(),
		stage:    avatar.Stage,
		maxImage: avatar.DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "session")
	return s
}

// User returns a copy of the held user and whether there is one.
func (s *SessionStore) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return s.user.Clone(), true
}

// IsAuthenticated reports whether a user is held.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsLoading reports whether any operation is in flight.
func (s *SessionStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending > 0
}

func (s *SessionStore) begin() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *SessionStore) end() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

func (s *SessionStore) replace(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return
	}
	c := u.Clone()
	s.user = &c
}

// Bootstrap asks the API whether the stored session cookie is still valid
// and populates the store from the answer. It runs once; later calls only
// report the current state. Failure is silent and leaves no user.
func (s *SessionStore) Bootstrap(ctx context.Context) bool {
	s.bootOnce.Do(func() {
		s.begin()
		defer s.end()

		u, err := s.client.Me(ctx)
		if err != nil {
			s.logger.Debug(ctx, "no active session", "error", err)
			s.replace(nil)
			return
		}
		s.logger.Info(ctx, "session restored", "user_id", u.ID)
		s.replace(&u)
	})
	return s.IsAuthenticated()
}

// Login exchanges credentials for a session. On failure the held user is
// left untouched.
func (s *SessionStore) Login(ctx context.Context, email string, password []byte) error {
	s.begin()
	defer s.end()

	u, err := s.client.Login(ctx, email, password)
	if err != nil {
		return s.fail(ctx, "login", "Login Failed", firstNonEmpty(serverMessage(err), "Login failed"), err)
	}

	s.replace(&u)
	s.logger.Info(ctx, "logged in", "user_id", u.ID)
	s.notifier.Notify(ctx, notify.Success("Welcome back!",
		fmt.Sprintf("Hello %s, you're now logged in.", u.Username)))
	return nil
}

// Register creates an account and starts a session for it.
func (s *SessionStore) Register(ctx context.Context, username, email string, password []byte) error {
	s.begin()
	defer s.end()

	u, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		msg := firstNonEmpty(fieldMessage(err), serverMessage(err), "Registration failed")
		return s.fail(ctx, "register", "Registration Failed", msg, err)
	}

	s.replace(&u)
	s.logger.Info(ctx, "registered", "user_id", u.ID)
	s.notifier.Notify(ctx, notify.Success("Account Created!",
		fmt.Sprintf("Welcome %s! Your account has been created successfully.", username)))
	return nil
}

// Logout ends the session. The held user is cleared even when the API call
// fails; the error is returned for logging only.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.begin()
	defer s.end()

	err := s.client.Logout(ctx)
	if err != nil {
		s.logger.Warn(ctx, "logout request failed", "error", err)
	}

	s.replace(nil)
	s.notifier.Notify(ctx, notify.Success("Signed Out", "You have been successfully signed out."))
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// UpdateUser sends patch and merges the fields the API returns into the held
// user. Without a held user it fails without calling the API. An empty patch
// is a no-op.
func (s *SessionStore) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	if !s.IsAuthenticated() {
		return s.fail(ctx, "update", "Profile Update Failed", msgNotLoggedIn, ErrNotLoggedIn)
	}
	if patch.IsEmpty() {
		s.logger.Debug(ctx, "empty profile update skipped")
		return nil
	}

	s.begin()
	defer s.end()

	fields, err := s.client.UpdateUser(ctx, patch)
	if err != nil {
		return s.fail(ctx, "update", "Profile Update Failed", firstNonEmpty(serverMessage(err), "Failed to update user"), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		s.logger.Warn(ctx, "update settled after session ended, dropping result")
		return nil
	}
	merged := s.user.Merge(fields)
	s.user = &merged
	return nil
}

// UpdateAvatar stages the image at path as a data URI and then sends it as
// the new profile picture. A staging failure is reported like any other
// update failure and nothing is sent.
func (s *SessionStore) UpdateAvatar(ctx context.Context, path string) error {
	if !s.IsAuthenticated() {
		return s.fail(ctx, "update", "Profile Update Failed", msgNotLoggedIn, ErrNotLoggedIn)
	}

	uri, err := s.stage(path, s.maxImage)
	if err != nil {
		return s.fail(ctx, "update", "Profile Update Failed", err.Error(), err)
	}
	return s.UpdateUser(ctx, models.UserPatch{ProfileURL: &uri})
}

// DeleteAccount deletes the account after the API checks password.
func (s *SessionStore) DeleteAccount(ctx context.Context, password []byte) error {
	s.begin()
	defer s.end()

	if err := s.client.DeleteUser(ctx, password); err != nil {
		return s.fail(ctx, "delete", "Delete Failed", firstNonEmpty(serverMessage(err), "Failed to delete user account"), err)
	}

	s.replace(nil)
	s.logger.Info(ctx, "account deleted")
	s.notifier.Notify(ctx, notify.Success("Account Deleted", "Your account has been successfully deleted."))
	return nil
}

func (s *SessionStore) fail(ctx context.Context, op, title, msg string, err error) error {
	s.logger.Warn(ctx, "operation failed", "op", op, "error", err)
	s.notifier.Notify(ctx, notify.Failure(title, msg))
	return &OpError{Op: op, Message: msg, Err: err}
}
