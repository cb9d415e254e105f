package models

import (
	"hallbook/src/types"

	"github.com/google/uuid"
)

// Transaction is the persisted reference-to-target mapping for gateway
// payments. The reference alone is enough to route a callback, but the row
// gives auditability and replay safety.
type Transaction struct {
	ID uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`

	Reference     string                  `gorm:"uniqueIndex" json:"reference"`
	Purpose       string                  `json:"purpose"`
	ReservationID *uint                   `json:"reservation_id,omitempty"`
	BookingID     *uint                   `json:"booking_id,omitempty"`
	Amount        float64                 `json:"amount"`
	Currency      string                  `json:"currency,omitempty"`
	Status        types.TransactionStatus `gorm:"default:'pending'" json:"status"`
	GatewayTxnID  *string                 `json:"gateway_txn_id,omitempty"`
	Metadata      *types.Metadata         `gorm:"type:jsonb" json:"-"`

	types.Timestamps
}
