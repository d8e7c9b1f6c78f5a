package service

import (
	"context"
	"testing"

	"github.com/ayushbenny/shopping-cart/internal/dao"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"
	"github.com/ayushbenny/shopping-cart/pkg/utils"
	"github.com/stretchr/testify/assert"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func newAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock, func()) {
	sqldb, gormdb, mock := dbMock(t)
	jwtUtil := utils.NewJWTUtil("test-secret", 2, 168)
	svc := NewAuthService(dao.NewAuthDao(gormdb), jwtUtil)
	return svc, mock, func() { sqldb.Close() }
}

func TestRegisterSuccess(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	resp, err := svc.Register(context.Background(), &types.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "super-secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, e.SUCCESS, resp.Code)
	if assert.NotNil(t, resp.User) {
		assert.Equal(t, "ada@example.com", resp.User.Email)
		assert.NotEmpty(t, resp.User.UserID)
		assert.True(t, resp.User.IsActive)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	resp, err := svc.Register(context.Background(), &types.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "super-secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_USER_EXISTS, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func userRows(t *testing.T, password string, isActive, isDelete bool) *sqlmock.Rows {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	return sqlmock.NewRows([]string{"id", "user_uuid", "email", "password_hash", "is_active", "is_delete"}).
		AddRow(1, "uuid-1", "ada@example.com", hash, isActive, isDelete)
}

func TestLoginSuccess(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRows(t, "super-secret", true, false))

	resp, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "super-secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, e.SUCCESS, resp.Code)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRows(t, "super-secret", true, false))

	resp, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_PASSWORD, resp.Code)
	assert.Empty(t, resp.AccessToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginDeactivatedUser(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	// 停用的账号与不存在的账号对外不可区分
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRows(t, "super-secret", false, false))

	resp, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "super-secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_USER_NOT_EXISTS, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "ghost@example.com",
		Password: "super-secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_USER_NOT_EXISTS, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshRoundTrip(t *testing.T) {
	svc, _, closeDB := newAuthService(t)
	defer closeDB()

	jwtUtil := utils.NewJWTUtil("test-secret", 2, 168)
	_, refresh, err := jwtUtil.GenerateTokenPair(1, "ada@example.com")
	assert.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), &types.RefreshTokenRequest{RefreshToken: refresh})

	assert.NoError(t, err)
	assert.Equal(t, e.SUCCESS, resp.Code)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, closeDB := newAuthService(t)
	defer closeDB()

	jwtUtil := utils.NewJWTUtil("test-secret", 2, 168)
	access, _, err := jwtUtil.GenerateTokenPair(1, "ada@example.com")
	assert.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), &types.RefreshTokenRequest{RefreshToken: access})

	assert.NoError(t, err)
	assert.Equal(t, e.ERROR_AUTH_CHECK_TOKEN_FAIL, resp.Code)
}
