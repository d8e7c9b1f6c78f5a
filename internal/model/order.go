package model

import "time"

// Order 订单模型，TotalPrice 在首次写入订单项后计算
type Order struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64       `gorm:"column:user_id;not null;index" json:"user_id"`
	TotalPrice *float64    `gorm:"column:total_price;type:decimal(10,2)" json:"total_price"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (*Order) TableName() string {
	return "orders"
}

// OrderItem 订单行，(order_id, product_id) 唯一
type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"column:order_id;not null;uniqueIndex:idx_order_product" json:"order_id"`
	ProductID int64     `gorm:"column:product_id;not null;uniqueIndex:idx_order_product" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (*OrderItem) TableName() string {
	return "order_items"
}
