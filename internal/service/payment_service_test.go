package service

import (
	"context"
	"testing"

	"github.com/ayushbenny/shopping-cart/internal/dao"
	"github.com/ayushbenny/shopping-cart/internal/model"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func newPaymentService(t *testing.T) (*PaymentService, sqlmock.Sqlmock, func()) {
	sqldb, gormdb, mock := dbMock(t)
	svc := NewPaymentService(dao.NewOrderDao(gormdb), dao.NewPaymentDao(gormdb))
	return svc, mock, func() { sqldb.Close() }
}

func ownedOrderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "total_price"}).
		AddRow(5, 3, 25.50)
}

func paymentRows(status string, amount float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "order_id", "payment_method", "transaction_id", "amount_paid", "payment_status"}).
		AddRow(9, 5, model.PaymentMethodCreditCard, "txn-1", amount, status)
}

func TestCreatePaymentCompleted(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `orders`").
		WillReturnRows(ownedOrderRows())
	// 尚无支付记录
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `payments`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	resp, err := svc.CreatePayment(context.Background(), 3, &types.PaymentRequest{
		OrderID:       5,
		PaymentMethod: model.PaymentMethodCreditCard,
		AmountPaid:    25.50,
	})

	assert.NoError(t, err)
	assert.Equal(t, e.SUCCESS, resp.Code)
	if assert.NotNil(t, resp.Payment) {
		assert.Equal(t, model.PaymentStatusCompleted, resp.Payment.PaymentStatus)
		assert.NotEmpty(t, resp.Payment.TransactionID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentAmountMismatch(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `orders`").
		WillReturnRows(ownedOrderRows())
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `payments`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	// 金额不符也会落库，但标记 Failed
	resp, err := svc.CreatePayment(context.Background(), 3, &types.PaymentRequest{
		OrderID:       5,
		PaymentMethod: model.PaymentMethodUPI,
		AmountPaid:    20.00,
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_PAYMENT_AMOUNT_MISMATCH, resp.Code)
	if assert.NotNil(t, resp.Payment) {
		assert.Equal(t, model.PaymentStatusFailed, resp.Payment.PaymentStatus)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentDuplicate(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `orders`").
		WillReturnRows(ownedOrderRows())
	// 已存在支付记录，拒绝重复创建
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(paymentRows(model.PaymentStatusFailed, 20.00))

	resp, err := svc.CreatePayment(context.Background(), 3, &types.PaymentRequest{
		OrderID:       5,
		PaymentMethod: model.PaymentMethodCreditCard,
		AmountPaid:    25.50,
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_PAYMENT_EXISTS, resp.Code)
	if assert.NotNil(t, resp.Payment) {
		assert.Equal(t, model.PaymentStatusFailed, resp.Payment.PaymentStatus)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentDuplicateRace(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `orders`").
		WillReturnRows(ownedOrderRows())
	// 预检时尚无记录，但并发请求抢先插入，唯一索引兜底
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `payments`").
		WillReturnError(&mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry '5' for key 'payments.order_id'"})
	mock.ExpectRollback()
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(paymentRows(model.PaymentStatusCompleted, 25.50))

	resp, err := svc.CreatePayment(context.Background(), 3, &types.PaymentRequest{
		OrderID:       5,
		PaymentMethod: model.PaymentMethodCreditCard,
		AmountPaid:    25.50,
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_PAYMENT_EXISTS, resp.Code)
	if assert.NotNil(t, resp.Payment) {
		assert.Equal(t, model.PaymentStatusCompleted, resp.Payment.PaymentStatus)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentOrderNotOwned(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `orders`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := svc.CreatePayment(context.Background(), 4, &types.PaymentRequest{
		OrderID:       5,
		PaymentMethod: model.PaymentMethodCreditCard,
		AmountPaid:    25.50,
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_ORDER_NOT_EXISTS, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaymentRetrySucceeds(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `orders`").
		WillReturnRows(ownedOrderRows())
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(paymentRows(model.PaymentStatusFailed, 20.00))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `payments`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// 更新后回读
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(paymentRows(model.PaymentStatusCompleted, 25.50))

	resp, err := svc.UpdatePayment(context.Background(), 3, &types.PaymentRequest{
		OrderID:       5,
		PaymentMethod: model.PaymentMethodCreditCard,
		AmountPaid:    25.50,
	})

	assert.NoError(t, err)
	assert.Equal(t, e.SUCCESS, resp.Code)
	if assert.NotNil(t, resp.Payment) {
		assert.Equal(t, model.PaymentStatusCompleted, resp.Payment.PaymentStatus)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaymentCompletedIsFinal(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `orders`").
		WillReturnRows(ownedOrderRows())
	// Completed 是终态，不再发 UPDATE
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(paymentRows(model.PaymentStatusCompleted, 25.50))

	resp, err := svc.UpdatePayment(context.Background(), 3, &types.PaymentRequest{
		OrderID:       5,
		PaymentMethod: model.PaymentMethodCreditCard,
		AmountPaid:    25.50,
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_PAYMENT_COMPLETED, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaymentConcurrentCompletion(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `orders`").
		WillReturnRows(ownedOrderRows())
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(paymentRows(model.PaymentStatusPending, 20.00))
	// 条件更新未命中：并发下支付已被置为 Completed
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `payments`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	resp, err := svc.UpdatePayment(context.Background(), 3, &types.PaymentRequest{
		OrderID:       5,
		PaymentMethod: model.PaymentMethodCreditCard,
		AmountPaid:    25.50,
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_PAYMENT_COMPLETED, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentsForOrder(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `orders`").
		WillReturnRows(ownedOrderRows())
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(paymentRows(model.PaymentStatusCompleted, 25.50))

	orderID := int64(5)
	resp, err := svc.GetPayments(context.Background(), 3, &orderID)

	assert.NoError(t, err)
	assert.Equal(t, e.SUCCESS, resp.Code)
	assert.Len(t, resp.Payments, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
