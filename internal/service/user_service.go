package service

import (
	"context"
	"errors"

	"github.com/ayushbenny/shopping-cart/internal/dao"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/e"
	"github.com/ayushbenny/shopping-cart/pkg/utils"

	"gorm.io/gorm"
)

type UserService struct {
	userDao *dao.UserDao
}

func NewUserService(userDao *dao.UserDao) *UserService {
	return &UserService{
		userDao: userDao,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*types.GetUserResponse, error) {
	userInfo, err := s.userDao.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.GetUserResponse{
				Code:    e.ERROR_USER_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_USER_NOT_EXISTS),
			}, nil
		}
		return &types.GetUserResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	return &types.GetUserResponse{
		Code:    e.SUCCESS,
		Message: e.GetMsg(e.SUCCESS),
		User:    toUserView(userInfo),
	}, nil
}

// UpdateProfile PUT 全量更新当前用户
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *types.UpdateUserRequest) (*types.GetUserResponse, error) {
	// 1. 检查用户是否存在
	if _, err := s.userDao.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.GetUserResponse{
				Code:    e.ERROR_USER_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_USER_NOT_EXISTS),
			}, nil
		}
		return &types.GetUserResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	// 2. 构建更新字段
	updates := map[string]interface{}{
		"first_name":   req.FirstName,
		"last_name":    req.LastName,
		"email":        req.Email,
		"phone_number": req.PhoneNumber,
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return &types.GetUserResponse{Code: e.ERROR, Message: e.GetMsg(e.ERROR)}, err
		}
		updates["password_hash"] = hash
	}

	return s.applyUpdates(ctx, userID, updates)
}

// PatchProfile PATCH 局部更新，零值字段跳过
func (s *UserService) PatchProfile(ctx context.Context, userID int64, req *types.PatchUserRequest) (*types.GetUserResponse, error) {
	if _, err := s.userDao.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.GetUserResponse{
				Code:    e.ERROR_USER_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_USER_NOT_EXISTS),
			}, nil
		}
		return &types.GetUserResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.PhoneNumber != "" {
		updates["phone_number"] = req.PhoneNumber
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return &types.GetUserResponse{Code: e.ERROR, Message: e.GetMsg(e.ERROR)}, err
		}
		updates["password_hash"] = hash
	}

	// 没有更新字段则直接返回当前信息
	if len(updates) == 0 {
		return s.GetProfile(ctx, userID)
	}

	return s.applyUpdates(ctx, userID, updates)
}

func (s *UserService) applyUpdates(ctx context.Context, userID int64, updates map[string]interface{}) (*types.GetUserResponse, error) {
	if err := s.userDao.UpdateUser(ctx, userID, updates); err != nil {
		return &types.GetUserResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	// 获取最新信息返回
	updatedUser, err := s.userDao.GetUserByID(ctx, userID)
	if err != nil {
		return &types.GetUserResponse{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}
	return &types.GetUserResponse{
		Code:    e.SUCCESS,
		Message: e.GetMsg(e.SUCCESS),
		User:    toUserView(updatedUser),
	}, nil
}
