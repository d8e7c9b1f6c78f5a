// Package service 订单/支付核心业务
package service

import (
	"context"
	"errors"

	"github.com/ayushbenny/shopping-cart/internal/dao"
	"github.com/ayushbenny/shopping-cart/internal/model"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"
	"github.com/ayushbenny/shopping-cart/pkg/logger"

	"gorm.io/gorm"
)

type OrderService struct {
	orderDao *dao.OrderDao
}

func NewOrderService(orderDao *dao.OrderDao) *OrderService {
	return &OrderService{
		orderDao: orderDao,
	}
}

// totalForLog 日志用总价，未计算时记 0
func totalForLog(total *float64) float64 {
	if total == nil {
		return 0
	}
	return *total
}

// CreateOrder 创建订单：订单头、订单项、总价在一个事务内落库
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, req *types.CreateOrderRequest) (*types.CreateOrderResponse, error) {
	order, err := s.orderDao.CreateOrderWithItems(ctx, userID, req.Products)
	if err != nil {
		if errors.Is(err, dao.ErrProductMissing) {
			return &types.CreateOrderResponse{
				Code:    e.ERROR_PRODUCT_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_PRODUCT_NOT_EXISTS),
			}, nil
		}
		return &types.CreateOrderResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	logger.Info("订单创建成功", "order_id", order.ID, "user_id", userID, "total_price", totalForLog(order.TotalPrice))
	return &types.CreateOrderResponse{
		Code:    e.SUCCESS,
		Message: "Order created successfully",
		OrderID: order.ID,
	}, nil
}

// GetOrders 查询当前用户订单，orderID 为 nil 时返回全部
func (s *OrderService) GetOrders(ctx context.Context, userID int64, orderID *int64) (*types.GetOrdersResponse, error) {
	var orders []*model.Order
	if orderID != nil {
		order, err := s.orderDao.GetOrderForUser(ctx, *orderID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &types.GetOrdersResponse{
					Code:    e.ERROR_ORDER_NOT_EXISTS,
					Message: e.GetMsg(e.ERROR_ORDER_NOT_EXISTS),
				}, nil
			}
			return &types.GetOrdersResponse{
				Code:    e.ERROR,
				Message: e.GetMsg(e.ERROR),
			}, err
		}
		orders = []*model.Order{order}
	} else {
		var err error
		orders, err = s.orderDao.ListUserOrders(ctx, userID)
		if err != nil {
			return &types.GetOrdersResponse{
				Code:    e.ERROR,
				Message: e.GetMsg(e.ERROR),
			}, err
		}
	}

	details := make([]types.OrderDetail, 0, len(orders))
	for _, order := range orders {
		items, err := s.orderDao.GetOrderItemDetails(ctx, order.ID)
		if err != nil {
			return &types.GetOrdersResponse{
				Code:    e.ERROR,
				Message: e.GetMsg(e.ERROR),
			}, err
		}
		details = append(details, types.OrderDetail{
			OrderID:        order.ID,
			UserID:         order.UserID,
			ProductDetails: items,
			TotalPrice:     order.TotalPrice,
		})
	}

	return &types.GetOrdersResponse{
		Code:    e.SUCCESS,
		Message: e.GetMsg(e.SUCCESS),
		Orders:  details,
	}, nil
}

// UpdateOrder 订单项全量替换并重算总价
func (s *OrderService) UpdateOrder(ctx context.Context, userID int64, req *types.UpdateOrderRequest) (*types.UpdateOrderResponse, error) {
	// 校验订单归属
	if _, err := s.orderDao.GetOrderForUser(ctx, req.OrderID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.UpdateOrderResponse{
				Code:    e.ERROR_ORDER_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_ORDER_NOT_EXISTS),
			}, nil
		}
		return &types.UpdateOrderResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	order, err := s.orderDao.ReplaceOrderItems(ctx, req.OrderID, req.Products)
	if err != nil {
		switch {
		case errors.Is(err, dao.ErrProductMissing):
			return &types.UpdateOrderResponse{
				Code:    e.ERROR_PRODUCT_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_PRODUCT_NOT_EXISTS),
			}, nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return &types.UpdateOrderResponse{
				Code:    e.ERROR_ORDER_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_ORDER_NOT_EXISTS),
			}, nil
		default:
			return &types.UpdateOrderResponse{
				Code:    e.ERROR,
				Message: e.GetMsg(e.ERROR),
			}, err
		}
	}

	logger.Info("订单更新成功", "order_id", order.ID, "user_id", userID, "total_price", totalForLog(order.TotalPrice))
	return &types.UpdateOrderResponse{
		Code:    e.SUCCESS,
		Message: "Order updated successfully",
	}, nil
}
