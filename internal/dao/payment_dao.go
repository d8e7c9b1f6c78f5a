package dao

import (
	"context"
	"errors"

	"github.com/ayushbenny/shopping-cart/internal/model"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type PaymentDao struct {
	db *gorm.DB
}

func NewPaymentDao(db *gorm.DB) *PaymentDao {
	return &PaymentDao{db: db}
}

// ErrPaymentFrozen 支付已是终态（Completed），条件更新未命中
var ErrPaymentFrozen = errors.New("支付已完成，不可修改")

// ErrPaymentDuplicate order_id 唯一索引冲突，订单已有支付记录
var ErrPaymentDuplicate = errors.New("订单已存在支付记录")

// GetPaymentByOrderID 查询订单的支付记录
func (d *PaymentDao) GetPaymentByOrderID(ctx context.Context, orderID int64) (*model.Payment, error) {
	var payment model.Payment
	err := d.db.WithContext(ctx).Where("order_id = ?", orderID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// CreatePayment 创建支付记录，order_id 唯一索引兜底并发重复创建
func (d *PaymentDao) CreatePayment(ctx context.Context, payment *model.Payment) error {
	err := d.db.WithContext(ctx).Create(payment).Error
	var mysqlErr *mysqldrv.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrPaymentDuplicate
	}
	return err
}

// UpdatePaymentIfNotCompleted 条件更新：仅在支付未完成时生效。
// 方式、金额、状态在一条 UPDATE 里原子落库；已完成的支付不会被改写
func (d *PaymentDao) UpdatePaymentIfNotCompleted(ctx context.Context, orderID int64, updates map[string]interface{}) error {
	result := d.db.WithContext(ctx).Model(&model.Payment{}).
		Where("order_id = ? AND payment_status <> ?", orderID, model.PaymentStatusCompleted).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentFrozen
	}
	return nil
}

// ListPaymentsForUser 查询用户全部订单的支付记录
func (d *PaymentDao) ListPaymentsForUser(ctx context.Context, userID int64) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := d.db.WithContext(ctx).Model(&model.Payment{}).
		Joins("JOIN orders ON orders.id = payments.order_id").
		Where("orders.user_id = ?", userID).
		Order("payments.id").
		Find(&payments).Error
	return payments, err
}
