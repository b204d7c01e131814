package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer statuses. Only successful transfers are ever persisted, so
// TransferStatusSuccess is the single status a stored row can carry.
const (
	TransferStatusSuccess = "success"
)

// Transfer is the durable record of a committed transfer. It is created in
// the same atomic unit as the balance mutations and is immutable afterwards.
type Transfer struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	ExternalID string          `gorm:"uniqueIndex;not null" json:"external_id"`
	PayerID    uint            `gorm:"index;not null" json:"payer_id"`
	PayeeID    uint            `gorm:"index;not null" json:"payee_id"`
	Amount     decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	Status     string          `gorm:"not null" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}
