package types

// OrderItemInput 下单/改单的商品行，数量必须为正（由绑定层校验）
type OrderItemInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Products []OrderItemInput `json:"products" binding:"required,min=1,dive"`
}

// UpdateOrderRequest 订单项全量替换
type UpdateOrderRequest struct {
	OrderID  int64            `json:"order_id" binding:"required"`
	Products []OrderItemInput `json:"products" binding:"required,min=1,dive"`
}

// OrderProductDetail 订单行明细（联表商品信息）
type OrderProductDetail struct {
	ProductID          int64   `gorm:"column:product_id" json:"product_id"`
	ProductName        string  `gorm:"column:product_name" json:"product_name"`
	ProductDescription *string `gorm:"column:description" json:"product_description"`
	Price              float64 `gorm:"column:price" json:"price"`
	Quantity           int64   `gorm:"column:quantity" json:"quantity"`
}

type OrderDetail struct {
	OrderID        int64                `json:"order_id"`
	UserID         int64                `json:"user_id"`
	ProductDetails []OrderProductDetail `json:"product_details"`
	TotalPrice     *float64             `json:"total_price"`
}

type CreateOrderResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	OrderID int64  `json:"order_id,omitempty"`
}

type GetOrdersResponse struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Orders  []OrderDetail `json:"orders"`
}

type UpdateOrderResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
