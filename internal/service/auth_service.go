package service

import (
	"context"
	"errors"

	"github.com/ayushbenny/shopping-cart/internal/dao"
	"github.com/ayushbenny/shopping-cart/internal/model"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"
	"github.com/ayushbenny/shopping-cart/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 注册和登录不经过token拦截器

type AuthService struct {
	authDao *dao.AuthDao
	jwtUtil *utils.JWTUtil
}

func NewAuthService(authDao *dao.AuthDao, jwtUtil *utils.JWTUtil) *AuthService {
	return &AuthService{
		authDao: authDao,
		jwtUtil: jwtUtil,
	}
}

func toUserView(user *model.User) *types.User {
	return &types.User{
		ID:          user.ID,
		UserID:      user.UserUUID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error) {
	// 检查邮箱是否已注册
	exists, err := s.authDao.EmailExists(ctx, req.Email)
	if err != nil {
		return &types.RegisterResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}
	if exists {
		return &types.RegisterResponse{
			Code:    e.ERROR_USER_EXISTS,
			Message: e.GetMsg(e.ERROR_USER_EXISTS),
		}, nil
	}
	// 加密密码
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return &types.RegisterResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}
	// 创建一个model层的用户给下层dao层存储
	newUser := &model.User{
		UserUUID:     uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		PhoneNumber:  req.PhoneNumber,
		IsActive:     true,
	}

	if err := s.authDao.CreateUser(ctx, newUser); err != nil {
		return &types.RegisterResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	return &types.RegisterResponse{
		Code:    e.SUCCESS,
		Message: e.GetMsg(e.SUCCESS),
		User:    toUserView(newUser),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	// 获取用户信息
	dbUser, err := s.authDao.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// 未找到记录
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.LoginResponse{
				Code:    e.ERROR_USER_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_USER_NOT_EXISTS),
			}, nil
		}
		return &types.LoginResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	// 已注销或停用的账号不允许登录
	if dbUser.IsDelete || !dbUser.IsActive {
		return &types.LoginResponse{
			Code:    e.ERROR_USER_NOT_EXISTS,
			Message: e.GetMsg(e.ERROR_USER_NOT_EXISTS),
		}, nil
	}

	// 验证密码
	if !utils.CheckPassword(req.Password, dbUser.PasswordHash) {
		return &types.LoginResponse{
			Code:    e.ERROR_PASSWORD,
			Message: e.GetMsg(e.ERROR_PASSWORD),
		}, nil
	}

	// 生成 token 对
	accessToken, refreshToken, err := s.jwtUtil.GenerateTokenPair(dbUser.ID, dbUser.Email)
	if err != nil {
		return &types.LoginResponse{
			Code:    e.ERROR_AUTH_TOKEN,
			Message: e.GetMsg(e.ERROR_AUTH_TOKEN),
		}, err
	}

	return &types.LoginResponse{
		Code:         e.SUCCESS,
		Message:      e.GetMsg(e.SUCCESS),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserView(dbUser),
	}, nil
}

// Refresh 用 refresh token 换取新 token 对
func (s *AuthService) Refresh(_ context.Context, req *types.RefreshTokenRequest) (*types.RefreshTokenResponse, error) {
	accessToken, refreshToken, err := s.jwtUtil.RefreshTokenPair(req.RefreshToken)
	if err != nil {
		code := e.ERROR_AUTH_CHECK_TOKEN_FAIL
		if errors.Is(err, utils.ErrTokenExpired) {
			code = e.ERROR_AUTH_CHECK_TOKEN_TIMEOUT
		}
		return &types.RefreshTokenResponse{
			Code:    code,
			Message: e.GetMsg(code),
		}, nil
	}
	return &types.RefreshTokenResponse{
		Code:         e.SUCCESS,
		Message:      e.GetMsg(e.SUCCESS),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
