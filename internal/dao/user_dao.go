package dao

import (
	"context"
	"time"

	"github.com/ayushbenny/shopping-cart/internal/model"

	"gorm.io/gorm"
)

type UserDao struct {
	db *gorm.DB
}

// NewUserDao 构造函数（依赖注入）
func NewUserDao(db *gorm.DB) *UserDao {
	return &UserDao{db: db}
}

// GetUserByID 根据用户ID获取用户
func (dao *UserDao) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).Where("id = ? AND is_delete = ?", id, false).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser 更新用户信息
func (dao *UserDao) UpdateUser(ctx context.Context, userID int64, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	return dao.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error
}
