package storage

import (
	"context"

	"github.com/iudanet/authd/internal/models"
)

// AccountRepository defines interface for account persistence
type AccountRepository interface {
	// CreateAccount inserts a new account.
	// Returns ErrAccountExists if the username is already taken; the check
	// relies on the storage uniqueness constraint, so callers must expect
	// this error even after a passed AccountExists pre-check
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccountByUsername retrieves account by username (case-sensitive).
	// Returns ErrAccountNotFound if the account doesn't exist
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)

	// AccountExists reports whether an account with this username exists.
	// Used for the pre-insert uniqueness check
	AccountExists(ctx context.Context, username string) (bool, error)
}
