package repositories

import "lapak/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	// FindByEmail returns every user with the given email. Emails are not
	// unique, so sign-in has to check each candidate's credential.
	FindByEmail(email string) ([]models.User, error)
	// GetByToken resolves a live session token to its user. Returns
	// an ErrNotFound-wrapped error when no user holds the token.
	GetByToken(token string) (*models.User, error)
	// UpdateToken sets the user's api_token. A nil token signs the user out.
	UpdateToken(id string, token *string) error
	Delete(id string) error
}
