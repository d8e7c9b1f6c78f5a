package types

import "github.com/ayushbenny/shopping-cart/internal/model"

// PaymentRequest POST/PUT 共用：订单、支付方式与支付金额
type PaymentRequest struct {
	OrderID       int64   `json:"order_id" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=credit-card wire-transfer net-banking UPI"`
	AmountPaid    float64 `json:"amount_paid" binding:"required,gt=0"`
}

type PaymentResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Payment *model.Payment `json:"payment,omitempty"`
}

type ListPaymentsResponse struct {
	Code     int              `json:"code"`
	Message  string           `json:"message"`
	Payments []*model.Payment `json:"payments"`
}
