package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "paymo/internal/errors"
	"paymo/internal/models"
)

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a ledger reader.
func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) FindByID(ctx context.Context, id uint) (*models.Transfer, error) {
	var tr models.Transfer
	err := r.db.WithContext(ctx).First(&tr, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTransferNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

func (r *transferRepository) ListByAccount(ctx context.Context, accountID uint, limit, offset int) ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := r.db.WithContext(ctx).
		Where("payer_id = ? OR payee_id = ?", accountID, accountID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transfers).Error
	if err != nil {
		return nil, err
	}
	return transfers, nil
}
