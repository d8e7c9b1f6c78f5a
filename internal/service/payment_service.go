package service

import (
	"context"
	"errors"
	"time"

	"github.com/ayushbenny/shopping-cart/internal/dao"
	"github.com/ayushbenny/shopping-cart/internal/model"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"
	"github.com/ayushbenny/shopping-cart/pkg/logger"
	"github.com/ayushbenny/shopping-cart/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService struct {
	orderDao   *dao.OrderDao
	paymentDao *dao.PaymentDao
}

func NewPaymentService(orderDao *dao.OrderDao, paymentDao *dao.PaymentDao) *PaymentService {
	return &PaymentService{
		orderDao:   orderDao,
		paymentDao: paymentDao,
	}
}

// resolveStatus 支付状态机的判定：提交金额与订单总价定点相等才算 Completed
func resolveStatus(order *model.Order, amountPaid float64) string {
	if order.TotalPrice != nil && utils.MoneyEquals(amountPaid, *order.TotalPrice) {
		return model.PaymentStatusCompleted
	}
	return model.PaymentStatusFailed
}

// CreatePayment 为订单创建支付记录。
// 已存在支付记录的订单拒绝重复创建，并回报已有状态；
// 金额不符也会落库（Failed），以便用户修正后重试
func (s *PaymentService) CreatePayment(ctx context.Context, userID int64, req *types.PaymentRequest) (*types.PaymentResponse, error) {
	order, err := s.orderDao.GetOrderForUser(ctx, req.OrderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.PaymentResponse{
				Code:    e.ERROR_ORDER_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_ORDER_NOT_EXISTS),
			}, nil
		}
		return &types.PaymentResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	// 一个订单只允许一条支付记录
	existing, err := s.paymentDao.GetPaymentByOrderID(ctx, req.OrderID)
	if err == nil {
		return &types.PaymentResponse{
			Code:    e.ERROR_PAYMENT_EXISTS,
			Message: e.GetMsg(e.ERROR_PAYMENT_EXISTS),
			Payment: existing,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return &types.PaymentResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	payment := &model.Payment{
		OrderID:       req.OrderID,
		PaymentMethod: req.PaymentMethod,
		TransactionID: uuid.NewString(),
		AmountPaid:    utils.RoundMoney(req.AmountPaid),
		PaymentStatus: resolveStatus(order, req.AmountPaid),
	}

	if err := s.paymentDao.CreatePayment(ctx, payment); err != nil {
		if errors.Is(err, dao.ErrPaymentDuplicate) {
			// 并发下另一请求先建了支付记录，返回已有状态
			current, gerr := s.paymentDao.GetPaymentByOrderID(ctx, req.OrderID)
			if gerr != nil {
				return &types.PaymentResponse{
					Code:    e.ERROR,
					Message: e.GetMsg(e.ERROR),
				}, gerr
			}
			return &types.PaymentResponse{
				Code:    e.ERROR_PAYMENT_EXISTS,
				Message: e.GetMsg(e.ERROR_PAYMENT_EXISTS),
				Payment: current,
			}, nil
		}
		return &types.PaymentResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	logger.Info("支付记录已创建", "order_id", req.OrderID, "status", payment.PaymentStatus,
		"amount_paid", payment.AmountPaid, "transaction_id", payment.TransactionID)

	if payment.PaymentStatus != model.PaymentStatusCompleted {
		return &types.PaymentResponse{
			Code:    e.ERROR_PAYMENT_AMOUNT_MISMATCH,
			Message: e.GetMsg(e.ERROR_PAYMENT_AMOUNT_MISMATCH),
			Payment: payment,
		}, nil
	}
	return &types.PaymentResponse{
		Code:    e.SUCCESS,
		Message: "Payment successful",
		Payment: payment,
	}, nil
}

// UpdatePayment 重试支付：Completed 是终态，不允许再修改；
// 其余情况重新比对金额并整体更新方式/金额/状态
func (s *PaymentService) UpdatePayment(ctx context.Context, userID int64, req *types.PaymentRequest) (*types.PaymentResponse, error) {
	order, err := s.orderDao.GetOrderForUser(ctx, req.OrderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.PaymentResponse{
				Code:    e.ERROR_ORDER_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_ORDER_NOT_EXISTS),
			}, nil
		}
		return &types.PaymentResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	existing, err := s.paymentDao.GetPaymentByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.PaymentResponse{
				Code:    e.ERROR_PAYMENT_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_PAYMENT_NOT_EXISTS),
			}, nil
		}
		return &types.PaymentResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}
	if existing.PaymentStatus == model.PaymentStatusCompleted {
		return &types.PaymentResponse{
			Code:    e.ERROR_PAYMENT_COMPLETED,
			Message: e.GetMsg(e.ERROR_PAYMENT_COMPLETED),
		}, nil
	}

	newStatus := resolveStatus(order, req.AmountPaid)
	updates := map[string]interface{}{
		"payment_method": req.PaymentMethod,
		"amount_paid":    utils.RoundMoney(req.AmountPaid),
		"payment_status": newStatus,
		"updated_at":     time.Now(),
	}
	if err := s.paymentDao.UpdatePaymentIfNotCompleted(ctx, req.OrderID, updates); err != nil {
		if errors.Is(err, dao.ErrPaymentFrozen) {
			// 条件更新未命中：并发下支付已先一步完成
			return &types.PaymentResponse{
				Code:    e.ERROR_PAYMENT_COMPLETED,
				Message: e.GetMsg(e.ERROR_PAYMENT_COMPLETED),
			}, nil
		}
		return &types.PaymentResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	updated, err := s.paymentDao.GetPaymentByOrderID(ctx, req.OrderID)
	if err != nil {
		return &types.PaymentResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	logger.Info("支付记录已更新", "order_id", req.OrderID, "status", updated.PaymentStatus,
		"amount_paid", updated.AmountPaid)

	if updated.PaymentStatus != model.PaymentStatusCompleted {
		return &types.PaymentResponse{
			Code:    e.ERROR_PAYMENT_AMOUNT_MISMATCH,
			Message: e.GetMsg(e.ERROR_PAYMENT_AMOUNT_MISMATCH),
			Payment: updated,
		}, nil
	}
	return &types.PaymentResponse{
		Code:    e.SUCCESS,
		Message: "Payment successful",
		Payment: updated,
	}, nil
}

// GetPayments 查询当前用户订单的支付记录，orderID 为 nil 时返回全部
func (s *PaymentService) GetPayments(ctx context.Context, userID int64, orderID *int64) (*types.ListPaymentsResponse, error) {
	if orderID != nil {
		if _, err := s.orderDao.GetOrderForUser(ctx, *orderID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &types.ListPaymentsResponse{
					Code:    e.ERROR_ORDER_NOT_EXISTS,
					Message: e.GetMsg(e.ERROR_ORDER_NOT_EXISTS),
				}, nil
			}
			return &types.ListPaymentsResponse{
				Code:    e.ERROR,
				Message: e.GetMsg(e.ERROR),
			}, err
		}

		payment, err := s.paymentDao.GetPaymentByOrderID(ctx, *orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &types.ListPaymentsResponse{
					Code:    e.ERROR_PAYMENT_NOT_EXISTS,
					Message: e.GetMsg(e.ERROR_PAYMENT_NOT_EXISTS),
				}, nil
			}
			return &types.ListPaymentsResponse{
				Code:    e.ERROR,
				Message: e.GetMsg(e.ERROR),
			}, err
		}
		return &types.ListPaymentsResponse{
			Code:     e.SUCCESS,
			Message:  e.GetMsg(e.SUCCESS),
			Payments: []*model.Payment{payment},
		}, nil
	}

	payments, err := s.paymentDao.ListPaymentsForUser(ctx, userID)
	if err != nil {
		return &types.ListPaymentsResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}
	return &types.ListPaymentsResponse{
		Code:     e.SUCCESS,
		Message:  e.GetMsg(e.SUCCESS),
		Payments: payments,
	}, nil
}
