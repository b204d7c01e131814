package repositories

import (
	"context"

	"paymo/internal/models"
)

// TransferRepository reads the ledger. Writes happen only through the unit
// of work opened by TransferStore.
type TransferRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Transfer, error)
	ListByAccount(ctx context.Context, accountID uint, limit, offset int) ([]models.Transfer, error)
}
