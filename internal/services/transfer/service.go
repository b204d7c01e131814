// Package transfer implements the transfer coordination engine: ordered
// account locking, business-rule validation, external authorization and the
// atomic commit of balances plus ledger record.
package transfer

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"paymo/internal/errors"
	"paymo/internal/models"
)

type service struct {
	store      AccountStore
	authorizer Authorizer
	notifier   Notifier
	log        *zap.Logger
}

// NewService creates a new transfer service instance.
func NewService(store AccountStore, authorizer Authorizer, notifier Notifier, log *zap.Logger) Service {
	if store == nil {
		panic("store is required")
	}
	if authorizer == nil {
		panic("authorizer is required")
	}
	if notifier == nil {
		panic("notifier is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		store:      store,
		authorizer: authorizer,
		notifier:   notifier,
		log:        log,
	}
}

// Transfer moves amount from payer to payee. Both accounts stay locked from
// validation through commit, so the authorization call happens under the
// locks: no balance can change between the decision and the commit. On any
// failure the unit of work is discarded and nothing is persisted.
func (s *service) Transfer(ctx context.Context, payerID, payeeID uint, amount decimal.Decimal) (*models.Transfer, error) {
	var record *models.Transfer

	err := s.store.WithPair(ctx, payerID, payeeID, func(uow UnitOfWork, payer, payee *models.Account) error {
		if payer.ID == payee.ID {
			return errors.ErrSelfTransfer
		}
		if payer.IsMerchant() {
			return errors.ErrMerchantPayer
		}
		if payer.Balance.LessThan(amount) {
			return errors.ErrInsufficientFunds
		}

		authorized, err := s.authorizer.Authorize(ctx)
		if err != nil {
			// Unavailability is denial for the caller, but operators need
			// to tell the two apart.
			s.log.Warn("authorization service unavailable",
				zap.Uint("payer_id", payerID),
				zap.Uint("payee_id", payeeID),
				zap.Error(err))
			return errors.ErrNotAuthorized
		}
		if !authorized {
			return errors.ErrNotAuthorized
		}

		if err := uow.Apply(payer, amount.Neg()); err != nil {
			return err
		}
		if err := uow.Apply(payee, amount); err != nil {
			return err
		}

		record = &models.Transfer{
			ExternalID: uuid.NewString(),
			PayerID:    payer.ID,
			PayeeID:    payee.ID,
			Amount:     amount,
			Status:     models.TransferStatusSuccess,
		}
		return uow.Record(record)
	})
	if err != nil {
		return nil, err
	}

	// The transfer is committed at this point. Notification delivery runs in
	// the background and can no longer affect the result.
	s.notifier.Notify(record.PayeeID, record.ID)

	s.log.Info("transfer committed",
		zap.Uint("transfer_id", record.ID),
		zap.Uint("payer_id", record.PayerID),
		zap.Uint("payee_id", record.PayeeID),
		zap.String("amount", amount.StringFixed(2)))

	return record, nil
}
