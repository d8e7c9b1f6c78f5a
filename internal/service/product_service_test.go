package service

import (
	"context"
	"testing"

	"github.com/ayushbenny/shopping-cart/internal/dao"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"
	"github.com/stretchr/testify/assert"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func newProductService(t *testing.T) (*ProductService, sqlmock.Sqlmock, func()) {
	sqldb, gormdb, mock := dbMock(t)
	// 测试不启用 redis 缓存
	svc := NewProductService(dao.NewProductDao(gormdb, nil, 0))
	return svc, mock, func() { sqldb.Close() }
}

func TestCreateProduct(t *testing.T) {
	svc, mock, closeDB := newProductService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `products`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	resp, err := svc.CreateProduct(context.Background(), &types.CreateProductRequest{
		ProductName: "Keyboard",
		Price:       10.50,
	})

	assert.NoError(t, err)
	assert.Equal(t, e.SUCCESS, resp.Code)
	if assert.NotNil(t, resp.Product) {
		assert.Equal(t, int64(1), resp.Product.ID)
		assert.Equal(t, "Keyboard", resp.Product.ProductName)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductNotFound(t *testing.T) {
	svc, mock, closeDB := newProductService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := svc.GetProduct(context.Background(), 404)

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_PRODUCT_NOT_EXISTS, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchProductsByNameAndPrice(t *testing.T) {
	svc, mock, closeDB := newProductService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "price"}).
			AddRow(1, "Keyboard", 10.50).
			AddRow(2, "Keyboard Pro", 45.00))

	minPrice := 5.0
	resp, err := svc.SearchProducts(context.Background(), &types.SearchProductsQuery{
		ProductName:  "Keyboard",
		MinimumPrice: &minPrice,
	})

	assert.NoError(t, err)
	assert.Equal(t, e.SUCCESS, resp.Code)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Products, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchProductsEmptyResult(t *testing.T) {
	svc, mock, closeDB := newProductService(t)
	defer closeDB()

	// 无结果视作未找到
	mock.ExpectQuery("SELECT (.+) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := svc.SearchProducts(context.Background(), &types.SearchProductsQuery{
		ProductName: "nothing-matches",
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_PRODUCT_NOT_EXISTS, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProductSoftDeletes(t *testing.T) {
	svc, mock, closeDB := newProductService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "price", "is_delete"}).
			AddRow(1, "Keyboard", 10.50, false))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `products`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := svc.DeleteProduct(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, e.SUCCESS, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchProductNoFields(t *testing.T) {
	svc, mock, closeDB := newProductService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "price", "is_delete"}).
			AddRow(1, "Keyboard", 10.50, false))

	resp, err := svc.PatchProduct(context.Background(), 1, &types.PatchProductRequest{})

	assert.NoError(t, err)
	assert.Equal(t, e.INVALID_PARAMS, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
