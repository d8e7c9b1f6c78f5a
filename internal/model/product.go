package model

import (
	"time"
)

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string    `gorm:"column:product_name;size:100;not null" json:"product_name"`
	Description *string   `gorm:"size:100" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	IsDelete    bool      `gorm:"default:false;not null" json:"is_delete"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (*Product) TableName() string {
	return "products"
}
