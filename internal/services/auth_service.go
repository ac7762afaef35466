package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

const (
	// tokenBytes is the entropy of a session token. Hex-encoded this
	// yields a 32-character opaque string.
	tokenBytes = 16

	// tokenIssueAttempts bounds regeneration on the (vanishingly rare)
	// token collision.
	tokenIssueAttempts = 3
)

// AuthService handles sign-up, sign-in, sign-out and the resolution of
// bearer tokens to users. Session state is the api_token column on the
// users table; there is no separate session store.
type AuthService struct {
	userRepo repositories.UserRepository
	verifier CredentialVerifier
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, verifier CredentialVerifier) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		verifier: verifier,
	}
}

// SignUp creates a new user and immediately issues a session token.
// It never checks email uniqueness: duplicate emails are permitted,
// matching the legacy behavior.
func (s *AuthService) SignUp(user *models.User) (string, error) {
	stored, err := s.verifier.Store(user.Password)
	if err != nil {
		return "", fmt.Errorf("failed to prepare credential: %w", err)
	}
	user.Password = stored

	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to sign up: %w", err)
	}
	return s.IssueToken(user)
}

// SignIn checks the supplied credentials and rotates the user's token on
// success. On any mismatch it returns ErrInvalidCredentials without
// revealing which field was wrong.
func (s *AuthService) SignIn(email, password string) (string, error) {
	candidates, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	for i := range candidates {
		if s.verifier.Verify(candidates[i].Password, password) {
			return s.IssueToken(&candidates[i])
		}
	}
	return "", ErrInvalidCredentials
}

// SignOut revokes the user's session token.
func (s *AuthService) SignOut(user *models.User) error {
	if err := s.userRepo.UpdateToken(user.ID, nil); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	user.APIToken = nil
	return nil
}

// Authenticate resolves a bearer credential to the user holding it.
// A missing or unknown credential yields ErrUnauthenticated.
func (s *AuthService) Authenticate(credential string) (*models.User, error) {
	if credential == "" {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetByToken(credential)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	return user, nil
}

// IssueToken generates a fresh random token, persists it as the user's
// api_token and returns it. Regenerates if the token is already held by
// someone, on top of the unique index on the column.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	for attempt := 0; attempt < tokenIssueAttempts; attempt++ {
		token, err := generateToken()
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}

		if _, err := s.userRepo.GetByToken(token); err == nil {
			continue // collision, try again
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return "", fmt.Errorf("failed to check token uniqueness: %w", err)
		}

		if err := s.userRepo.UpdateToken(user.ID, &token); err != nil {
			return "", fmt.Errorf("failed to persist token: %w", err)
		}
		user.APIToken = &token
		return token, nil
	}
	return "", fmt.Errorf("could not issue a unique token after %d attempts", tokenIssueAttempts)
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
