package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mark1william11/FlavorFind/internal/feature/auth/domain/entity"
)

// SessionTTL bounds how long a server-side session record survives.
// The browser cookie itself has no max-age and dies with the session.
const SessionTTL = 7 * 24 * time.Hour

// dummyHash is compared when no user matches the identifier, so that a
// login attempt against an unknown account costs the same as a wrong
// password. Response timing must not reveal whether an account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrUsernameTaken or ErrEmailTaken on a uniqueness violation.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user matching the specified username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// authUsecase implements registration, login and session lifecycle logic.
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
	newToken func() (string, error)
}

// NewAuthUsecase creates a new authUsecase. newToken mints opaque session
// tokens and is injected so tests can make token values deterministic.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, newToken func() (string, error)) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
		newToken: newToken,
	}
}

// Register creates a new user with a bcrypt hash of password.
// Username and email are each checked for conflicts before the insert; the
// unique indexes on the table remain the final authority.
func (u *authUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an identifier/password pair. The identifier is
// matched against email first, then username. A bcrypt comparison always
// runs, against dummyHash when no user matched, to keep timing flat.
func (u *authUsecase) Authenticate(ctx context.Context, identifier, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, identifier)
	if errors.Is(err, ErrUserNotFound) {
		user, err = u.users.FindByUsername(ctx, identifier)
	}
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash := dummyHash
	if err == nil {
		hash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// StartSession issues a fresh session for user. Any session the client
// presented before logging in is deleted first, so a pre-login token can
// never survive into the authenticated session (fixation defense).
func (u *authUsecase) StartSession(ctx context.Context, user *entity.User, priorToken string) (*entity.Session, error) {
	if priorToken != "" {
		if err := u.sessions.Delete(ctx, priorToken); err != nil {
			return nil, err
		}
	}

	token, err := u.newToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        token,
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// EndSession removes the session behind token. ErrSessionNotFound reports
// the "not logged in" case to the caller; the delete itself is idempotent.
func (u *authUsecase) EndSession(ctx context.Context, token string) error {
	if _, err := u.sessions.FindByID(ctx, token); err != nil {
		return err
	}
	return u.sessions.Delete(ctx, token)
}

// CurrentUser resolves a session token to its user. A session whose user
// no longer exists is deleted on the spot and reported invalid, so a stale
// cookie can never pass for a login.
func (u *authUsecase) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	session, err := u.sessions.FindByID(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		if err := u.sessions.Delete(ctx, token); err != nil {
			return nil, err
		}
		return nil, ErrSessionNotFound
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if errors.Is(err, ErrUserNotFound) {
		if err := u.sessions.Delete(ctx, token); err != nil {
			return nil, err
		}
		return nil, ErrSessionInvalid
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
