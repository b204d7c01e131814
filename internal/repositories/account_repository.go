package repositories

import (
	"context"

	"paymo/internal/models"
)

// AccountRepository provides read/write access to accounts outside the
// transfer unit of work. Locked pair access lives on TransferStore.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id uint) (*models.Account, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Account, error)
}
