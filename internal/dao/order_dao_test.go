package dao

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func dbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}

	gormdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqldb,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}

	return sqldb, gormdb, mock
}

func TestCreateOrderWithNoItemsTotalZero(t *testing.T) {
	sqldb, gormdb, mock := dbMock(t)
	defer sqldb.Close()
	d := NewOrderDao(gormdb)

	// 空订单总价为 0
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0.0))
	mock.ExpectExec("UPDATE `orders`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order, err := d.CreateOrderWithItems(context.Background(), 3, nil)

	assert.NoError(t, err)
	if assert.NotNil(t, order.TotalPrice) {
		assert.Equal(t, 0.0, *order.TotalPrice)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
