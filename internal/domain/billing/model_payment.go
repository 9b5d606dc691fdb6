package billing

import (
	"time"

	"toadtoe-api/internal/domain/users"
)

// Payment is one recorded Stripe charge for the premium subscription.
type Payment struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"not null;index" json:"user_id"`
	User   users.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	AmountEUR  float64 `gorm:"column:amount_eur" json:"amount_eur"`
	Status     string  `gorm:"not null" json:"status"`
	InvoiceID  *string `json:"invoice_id,omitempty"`
	ReceiptURL *string `json:"receipt_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
