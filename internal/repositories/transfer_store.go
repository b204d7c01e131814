package repositories

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "paymo/internal/errors"
	"paymo/internal/models"
	"paymo/internal/repositories/cache"
	"paymo/internal/services/transfer"
)

// TransferStore implements the coordinator's AccountStore on top of a GORM
// transaction. The DB transaction is the unit of work; the account rows are
// locked with SELECT ... FOR UPDATE, always in ascending id order so that two
// transfers over the same pair in reversed roles cannot deadlock.
type TransferStore struct {
	db    *gorm.DB
	cache *cache.Service
}

// NewTransferStore creates the store. cacheSvc may be nil.
func NewTransferStore(db *gorm.DB, cacheSvc *cache.Service) *TransferStore {
	return &TransferStore{db: db, cache: cacheSvc}
}

// WithPair locks both accounts and runs fn inside one transaction.
func (s *TransferStore) WithPair(ctx context.Context, payerID, payeeID uint, fn func(uow transfer.UnitOfWork, payer, payee *models.Account) error) error {
	committed := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked := make(map[uint]*models.Account, 2)
		for _, id := range orderedPair(payerID, payeeID) {
			var acc models.Account
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&acc, id).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAccountNotFound
			}
			if err != nil {
				return err
			}
			locked[id] = &acc
		}

		if err := fn(&gormUnitOfWork{tx: tx}, locked[payerID], locked[payeeID]); err != nil {
			return err
		}
		committed = true
		return nil
	})
	if err != nil {
		return err
	}

	if committed && s.cache != nil {
		_ = s.cache.InvalidateAccount(ctx, payerID)
		_ = s.cache.InvalidateAccount(ctx, payeeID)
	}
	return nil
}

// orderedPair returns the ids in ascending order, collapsing duplicates so a
// self-pair locks a single row.
func orderedPair(a, b uint) []uint {
	if a == b {
		return []uint{a}
	}
	if b < a {
		a, b = b, a
	}
	return []uint{a, b}
}

type gormUnitOfWork struct {
	tx *gorm.DB
}

func (u *gormUnitOfWork) Apply(account *models.Account, delta decimal.Decimal) error {
	next := account.Balance.Add(delta)
	if next.IsNegative() {
		return apperrors.ErrInsufficientFunds
	}
	if err := u.tx.Model(&models.Account{}).Where("id = ?", account.ID).Update("balance", next).Error; err != nil {
		return err
	}
	account.Balance = next
	return nil
}

func (u *gormUnitOfWork) Record(tr *models.Transfer) error {
	return u.tx.Create(tr).Error
}
