package repositories

import (
	"context"

	"paymo/internal/models"
)

// UserRepository persists users. A user and their account are created in one
// transaction so a registered user always has an account.
type UserRepository interface {
	CreateWithAccount(ctx context.Context, user *models.User, account *models.Account) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}
