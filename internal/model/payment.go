package model

import "time"

// Payment status constants
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

// Payment methods
const (
	PaymentMethodCreditCard   = "credit-card"
	PaymentMethodWireTransfer = "wire-transfer"
	PaymentMethodNetBanking   = "net-banking"
	PaymentMethodUPI          = "UPI"
)

// Payment 支付记录，与订单一对一
type Payment struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64     `gorm:"column:order_id;not null;uniqueIndex" json:"order_id"`
	PaymentMethod string    `gorm:"column:payment_method;size:20;not null" json:"payment_method"`
	TransactionID string    `gorm:"column:transaction_id;size:36;not null;uniqueIndex" json:"transaction_id"`
	AmountPaid    float64   `gorm:"column:amount_paid;type:decimal(10,2);not null" json:"amount_paid"`
	PaymentStatus string    `gorm:"column:payment_status;size:10;default:Pending;not null" json:"payment_status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (*Payment) TableName() string {
	return "payments"
}
