package transfer

import (
	"context"

	"github.com/shopspring/decimal"

	"paymo/internal/models"
)

// UnitOfWork groups the mutations of one transfer. Changes made through it
// become visible to other transfers only when the unit commits; an error from
// the callback discards all of them.
type UnitOfWork interface {
	// Apply adjusts a locked account's balance by delta.
	Apply(account *models.Account, delta decimal.Decimal) error
	// Record writes the transfer to the ledger inside the same unit.
	Record(transfer *models.Transfer) error
}

// AccountStore provides exclusive access to a pair of accounts for the
// duration of one atomic unit.
type AccountStore interface {
	// WithPair opens a unit of work, locks both accounts in ascending id
	// order regardless of which one pays, and invokes fn with the locked
	// rows (payer first). The unit commits if fn returns nil and is
	// discarded otherwise. Returns errors.ErrAccountNotFound when either id
	// does not exist.
	WithPair(ctx context.Context, payerID, payeeID uint, fn func(uow UnitOfWork, payer, payee *models.Account) error) error
}

// Authorizer consults the external decision service. A nil error with
// authorized=false is an explicit denial; a non-nil error means the service
// could not be reached, which the coordinator also treats as denial.
type Authorizer interface {
	Authorize(ctx context.Context) (bool, error)
}

// Notifier hands off a payee notification after a transfer commits. It must
// never fail the transfer; implementations deliver in the background.
type Notifier interface {
	Notify(payeeID, transferID uint)
}

// Service coordinates money transfers between accounts.
type Service interface {
	Transfer(ctx context.Context, payerID, payeeID uint, amount decimal.Decimal) (*models.Transfer, error)
}
