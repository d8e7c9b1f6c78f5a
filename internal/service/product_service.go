package service

import (
	"context"
	"errors"

	"github.com/ayushbenny/shopping-cart/internal/dao"
	"github.com/ayushbenny/shopping-cart/internal/model"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"

	"gorm.io/gorm"
)

type ProductService struct {
	productDao *dao.ProductDao
}

func NewProductService(productDao *dao.ProductDao) *ProductService {
	return &ProductService{
		productDao: productDao,
	}
}

// CreateProduct 创建商品
func (s *ProductService) CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*types.ProductResponse, error) {
	productModel := &model.Product{
		ProductName: req.ProductName,
		Description: req.Description,
		Price:       req.Price,
	}

	if _, err := s.productDao.CreateProduct(ctx, productModel); err != nil {
		return &types.ProductResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	return &types.ProductResponse{
		Code:    e.SUCCESS,
		Message: e.GetMsg(e.SUCCESS),
		Product: productModel,
	}, nil
}

// GetProduct 获取商品详情
func (s *ProductService) GetProduct(ctx context.Context, productID int64) (*types.ProductResponse, error) {
	productInfo, err := s.productDao.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 商品不存在是业务错误，返回nil error
			return &types.ProductResponse{
				Code:    e.ERROR_PRODUCT_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_PRODUCT_NOT_EXISTS),
			}, nil
		}
		return &types.ProductResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	return &types.ProductResponse{
		Code:    e.SUCCESS,
		Message: e.GetMsg(e.SUCCESS),
		Product: productInfo,
	}, nil
}

// SearchProducts 按条件检索商品目录，无结果视作未找到（与源系统一致）
func (s *ProductService) SearchProducts(ctx context.Context, query *types.SearchProductsQuery) (*types.ListProductsResponse, error) {
	products, err := s.productDao.SearchProducts(ctx, query.ProductName, query.MinimumPrice, query.MaximumPrice)
	if err != nil {
		return &types.ListProductsResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}
	if len(products) == 0 {
		return &types.ListProductsResponse{
			Code:    e.ERROR_PRODUCT_NOT_EXISTS,
			Message: "没有符合条件的商品",
		}, nil
	}

	return &types.ListProductsResponse{
		Code:     e.SUCCESS,
		Message:  e.GetMsg(e.SUCCESS),
		Products: products,
		Total:    len(products),
	}, nil
}

// UpdateProduct PUT 全量更新商品
func (s *ProductService) UpdateProduct(ctx context.Context, productID int64, req *types.UpdateProductRequest) (*types.ProductResponse, error) {
	if resp, err := s.ensureProductExists(ctx, productID); resp != nil {
		return resp, err
	}

	updates := map[string]interface{}{
		"product_name": req.ProductName,
		"description":  req.Description,
		"price":        req.Price,
	}
	return s.applyUpdates(ctx, productID, updates)
}

// PatchProduct PATCH 局部更新商品
func (s *ProductService) PatchProduct(ctx context.Context, productID int64, req *types.PatchProductRequest) (*types.ProductResponse, error) {
	if resp, err := s.ensureProductExists(ctx, productID); resp != nil {
		return resp, err
	}

	updates := map[string]interface{}{}
	if req.ProductName != "" {
		updates["product_name"] = req.ProductName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	// 如果没有需要更新的字段，返回错误
	if len(updates) == 0 {
		return &types.ProductResponse{
			Code:    e.INVALID_PARAMS,
			Message: e.GetMsg(e.INVALID_PARAMS),
		}, nil
	}

	return s.applyUpdates(ctx, productID, updates)
}

// DeleteProduct 软删除商品
func (s *ProductService) DeleteProduct(ctx context.Context, productID int64) (*types.ProductResponse, error) {
	if resp, err := s.ensureProductExists(ctx, productID); resp != nil {
		return resp, err
	}

	if err := s.productDao.SoftDeleteProduct(ctx, productID); err != nil {
		return &types.ProductResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	return &types.ProductResponse{
		Code:    e.SUCCESS,
		Message: e.GetMsg(e.SUCCESS),
	}, nil
}

// ensureProductExists 存在则返回 (nil, nil)，否则返回应答
func (s *ProductService) ensureProductExists(ctx context.Context, productID int64) (*types.ProductResponse, error) {
	_, err := s.productDao.GetProductByID(ctx, productID)
	if err == nil {
		return nil, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &types.ProductResponse{
			Code:    e.ERROR_PRODUCT_NOT_EXISTS,
			Message: e.GetMsg(e.ERROR_PRODUCT_NOT_EXISTS),
		}, nil
	}
	return &types.ProductResponse{
		Code:    e.ERROR,
		Message: e.GetMsg(e.ERROR),
	}, err
}

func (s *ProductService) applyUpdates(ctx context.Context, productID int64, updates map[string]interface{}) (*types.ProductResponse, error) {
	if err := s.productDao.UpdateProduct(ctx, productID, updates); err != nil {
		return &types.ProductResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	updated, err := s.productDao.GetProductByID(ctx, productID)
	if err != nil {
		return &types.ProductResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}
	return &types.ProductResponse{
		Code:    e.SUCCESS,
		Message: e.GetMsg(e.SUCCESS),
		Product: updated,
	}, nil
}
