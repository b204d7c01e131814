package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "paymo/internal/errors"
	"paymo/internal/models"
	"paymo/internal/repositories/cache"
)

type accountRepository struct {
	db    *gorm.DB
	cache *cache.Service
}

// NewAccountRepository creates an account repository. cacheSvc may be nil.
func NewAccountRepository(db *gorm.DB, cacheSvc *cache.Service) AccountRepository {
	return &accountRepository{db: db, cache: cacheSvc}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	if r.cache != nil {
		if acc, err := r.cache.GetAccount(ctx, id); err == nil {
			return acc, nil
		}
	}

	var acc models.Account
	err := r.db.WithContext(ctx).Preload("User").First(&acc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		_ = r.cache.SetAccount(ctx, &acc)
	}
	return &acc, nil
}

func (r *accountRepository) FindByUserID(ctx context.Context, userID uint) (*models.Account, error) {
	var acc models.Account
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
