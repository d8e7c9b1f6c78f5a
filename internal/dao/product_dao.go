package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ayushbenny/shopping-cart/internal/model"
	"github.com/ayushbenny/shopping-cart/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ProductDao struct {
	db       *gorm.DB
	redis    *redis.Client
	cacheTTL time.Duration
}

// NewProductDao redis 允许为 nil，此时退化为直查数据库
func NewProductDao(db *gorm.DB, rdb *redis.Client, cacheTTLSeconds int) *ProductDao {
	return &ProductDao{
		db:       db,
		redis:    rdb,
		cacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
	}
}

func productCacheKey(id int64) string {
	return fmt.Sprintf("product:detail:%d", id)
}

// CreateProduct 创建商品
func (dao *ProductDao) CreateProduct(ctx context.Context, product *model.Product) (int64, error) {
	if err := dao.db.WithContext(ctx).Create(product).Error; err != nil {
		return 0, err
	}
	return product.ID, nil
}

// GetProductByID 获取商品详情，优先走缓存；软删除的商品视作不存在
func (dao *ProductDao) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	if cached := dao.getCached(ctx, id); cached != nil {
		return cached, nil
	}

	var product model.Product
	err := dao.db.WithContext(ctx).Where("id = ? AND is_delete = ?", id, false).First(&product).Error
	if err != nil {
		return nil, err
	}

	dao.setCached(ctx, &product)
	return &product, nil
}

// SearchProducts 按名称/价格区间检索商品，隐藏软删除
func (dao *ProductDao) SearchProducts(ctx context.Context, name string, minPrice, maxPrice *float64) ([]*model.Product, error) {
	query := dao.db.WithContext(ctx).Model(&model.Product{}).Where("is_delete = ?", false)
	if name != "" {
		query = query.Where("product_name LIKE ?", "%"+name+"%")
	}
	if minPrice != nil {
		query = query.Where("price >= ?", *minPrice)
	}
	if maxPrice != nil {
		query = query.Where("price <= ?", *maxPrice)
	}

	var products []*model.Product
	err := query.Order("id").Find(&products).Error
	return products, err
}

// UpdateProduct 更新商品并使缓存失效
func (dao *ProductDao) UpdateProduct(ctx context.Context, id int64, updates map[string]interface{}) error {
	err := dao.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return err
	}
	dao.invalidateCache(ctx, id)
	return nil
}

// SoftDeleteProduct 软删除，商品永不物理删除
func (dao *ProductDao) SoftDeleteProduct(ctx context.Context, id int64) error {
	err := dao.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Update("is_delete", true).Error
	if err != nil {
		return err
	}
	dao.invalidateCache(ctx, id)
	return nil
}

// ========== 缓存辅助，缓存故障只降级不报错 ==========

func (dao *ProductDao) getCached(ctx context.Context, id int64) *model.Product {
	if dao.redis == nil {
		return nil
	}
	val, err := dao.redis.Get(ctx, productCacheKey(id)).Result()
	if err != nil {
		return nil
	}
	var product model.Product
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return nil
	}
	return &product
}

func (dao *ProductDao) setCached(ctx context.Context, product *model.Product) {
	if dao.redis == nil {
		return
	}
	buf, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := dao.redis.Set(ctx, productCacheKey(product.ID), buf, dao.cacheTTL).Err(); err != nil {
		logger.Warn("商品缓存写入失败", "product_id", product.ID, "err", err)
	}
}

func (dao *ProductDao) invalidateCache(ctx context.Context, id int64) {
	if dao.redis == nil {
		return
	}
	if err := dao.redis.Del(ctx, productCacheKey(id)).Err(); err != nil {
		logger.Warn("商品缓存失效失败", "product_id", id, "err", err)
	}
}
