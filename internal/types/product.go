package types

import "github.com/ayushbenny/shopping-cart/internal/model"

type CreateProductRequest struct {
	ProductName string  `json:"product_name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=100"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// UpdateProductRequest PUT 全量更新
type UpdateProductRequest struct {
	ProductName string  `json:"product_name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=100"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// PatchProductRequest PATCH 局部更新
type PatchProductRequest struct {
	ProductName string   `json:"product_name" binding:"omitempty,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=100"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
}

// SearchProductsQuery 目录检索参数
type SearchProductsQuery struct {
	ProductName  string   `form:"product_name"`
	MinimumPrice *float64 `form:"minimum_price"`
	MaximumPrice *float64 `form:"maximum_price"`
}

type ProductResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Product *model.Product `json:"product,omitempty"`
}

type ListProductsResponse struct {
	Code     int              `json:"code"`
	Message  string           `json:"message"`
	Products []*model.Product `json:"products"`
	Total    int              `json:"total"`
}
