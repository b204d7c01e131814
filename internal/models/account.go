package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account kinds
const (
	AccountKindOrdinary = "ordinary"
	AccountKindMerchant = "merchant"
)

// Account holds a user's balance. Balances are fixed-point decimals and are
// mutated only inside an open unit of work while the row lock is held.
type Account struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	UserID    uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User            `json:"-"`
	Kind      string          `gorm:"not null;default:'ordinary'" json:"kind"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsMerchant reports whether the account belongs to a merchant.
func (a *Account) IsMerchant() bool {
	return a.Kind == AccountKindMerchant
}
