package dao

import (
	"context"
	"errors"

	"github.com/ayushbenny/shopping-cart/internal/model"
	"github.com/ayushbenny/shopping-cart/internal/types"
	"github.com/ayushbenny/shopping-cart/pkg/utils"

	"gorm.io/gorm"
)

type OrderDao struct {
	db *gorm.DB
}

func NewOrderDao(db *gorm.DB) *OrderDao {
	return &OrderDao{
		db: db,
	}
}

// ErrProductMissing 请求中引用的商品不存在或已下架
var ErrProductMissing = errors.New("商品不存在或已下架")

// CreateOrderWithItems 创建订单及其订单项并计算总价，整体在一个事务内：
// 先建订单头，再逐行校验商品并写入订单项，最后按当前商品价格汇总 total_price
func (d *OrderDao) CreateOrderWithItems(ctx context.Context, userID int64, items []types.OrderItemInput) (*model.Order, error) {
	order := &model.Order{UserID: userID}
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			if _, err := d.fetchProduct(tx, item.ProductID); err != nil {
				return err
			}
			orderItem := &model.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(orderItem).Error; err != nil {
				return err
			}
		}
		return d.refreshTotalPrice(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ReplaceOrderItems 订单项全量替换：
// 现有订单项进入待删除集合；请求中的商品若已有行则原地改数量并保留，
// 否则暂存为新行；最后删除落选行、插入新行、重算总价。单事务执行
func (d *OrderDao) ReplaceOrderItems(ctx context.Context, orderID int64, items []types.OrderItemInput) (*model.Order, error) {
	var order model.Order
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", orderID).First(&order).Error; err != nil {
			return err
		}

		var existing []model.OrderItem
		if err := tx.Where("order_id = ?", orderID).Find(&existing).Error; err != nil {
			return err
		}

		// 待删除集合：按商品索引现有订单项
		pendingDelete := make(map[int64]model.OrderItem, len(existing))
		for _, item := range existing {
			pendingDelete[item.ProductID] = item
		}

		var toInsert []model.OrderItem
		for _, req := range items {
			if _, err := d.fetchProduct(tx, req.ProductID); err != nil {
				return err
			}
			if current, ok := pendingDelete[req.ProductID]; ok {
				// 原地更新数量，保留行身份
				if err := tx.Model(&model.OrderItem{}).Where("id = ?", current.ID).
					Update("quantity", req.Quantity).Error; err != nil {
					return err
				}
				delete(pendingDelete, req.ProductID)
			} else {
				toInsert = append(toInsert, model.OrderItem{
					OrderID:   orderID,
					ProductID: req.ProductID,
					Quantity:  req.Quantity,
				})
			}
		}

		// 删除请求中未出现的订单项
		if len(pendingDelete) > 0 {
			ids := make([]int64, 0, len(pendingDelete))
			for _, item := range pendingDelete {
				ids = append(ids, item.ID)
			}
			if err := tx.Where("id IN ?", ids).Delete(&model.OrderItem{}).Error; err != nil {
				return err
			}
		}

		for i := range toInsert {
			if err := tx.Create(&toInsert[i]).Error; err != nil {
				return err
			}
		}

		return d.refreshTotalPrice(tx, &order)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderForUser 获取属于指定用户的订单
func (d *OrderDao) GetOrderForUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	var order model.Order
	err := d.db.WithContext(ctx).Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListUserOrders 获取用户全部订单
func (d *OrderDao) ListUserOrders(ctx context.Context, userID int64) ([]*model.Order, error) {
	var orders []*model.Order
	err := d.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&orders).Error
	return orders, err
}

// GetOrderItemDetails 联表查询订单行明细
func (d *OrderDao) GetOrderItemDetails(ctx context.Context, orderID int64) ([]types.OrderProductDetail, error) {
	var details []types.OrderProductDetail
	err := d.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("order_items.product_id, products.product_name, products.description, products.price, order_items.quantity").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id").
		Scan(&details).Error
	return details, err
}

// fetchProduct 事务内解析商品，软删除视作不存在
func (d *OrderDao) fetchProduct(tx *gorm.DB, productID int64) (*model.Product, error) {
	var product model.Product
	err := tx.Where("id = ? AND is_delete = ?", productID, false).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductMissing
		}
		return nil, err
	}
	return &product, nil
}

// refreshTotalPrice 重算订单总价：sum(quantity * 当前商品价格)，空订单为 0
func (d *OrderDao) refreshTotalPrice(tx *gorm.DB, order *model.Order) error {
	var total float64
	err := tx.Model(&model.OrderItem{}).
		Select("COALESCE(SUM(order_items.quantity * products.price), 0)").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", order.ID).
		Scan(&total).Error
	if err != nil {
		return err
	}
	total = utils.RoundMoney(total)
	if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).
		Update("total_price", total).Error; err != nil {
		return err
	}
	order.TotalPrice = &total
	return nil
}
