package dao

import (
	"context"

	"Tably/models"

	"gorm.io/gorm"
)

type OrderDAO struct {
	Repo[models.Order]
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{Repo: NewRepo[models.Order](db)}
}

func (d *OrderDAO) Get(ctx context.Context, orderID int64) (*models.Order, error) {
	return d.FindOne(ctx, "order_id = ?", orderID)
}

func (d *OrderDAO) ListBySession(ctx context.Context, sessionID string) ([]models.Order, error) {
	var orders []models.Order
	err := d.Db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("order_id").
		Find(&orders).Error
	return orders, err
}

// ItemsBySession flattens all order items for a session in one query.
// Voucher validation and checkout math both consume this feed.
func (d *OrderDAO) ItemsBySession(ctx context.Context, sessionID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := d.Db.WithContext(ctx).
		Joins("JOIN orders ON orders.order_id = order_items.order_id").
		Where("orders.session_id = ?", sessionID).
		Order("order_items.order_item_id").
		Find(&items).Error
	return items, err
}

func (d *OrderDAO) ItemsByOrder(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := d.Db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("order_item_id").
		Find(&items).Error
	return items, err
}

func (d *OrderDAO) GetItem(ctx context.Context, orderItemID int64) (*models.OrderItem, error) {
	var item models.OrderItem
	err := d.Db.WithContext(ctx).Where("order_item_id = ?", orderItemID).First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (d *OrderDAO) UpdateItem(ctx context.Context, orderItemID int64, updates map[string]interface{}) error {
	return d.Db.WithContext(ctx).Model(&models.OrderItem{}).
		Where("order_item_id = ?", orderItemID).
		Updates(updates).Error
}

func (d *OrderDAO) DeleteItem(ctx context.Context, orderItemID int64) error {
	return d.Db.WithContext(ctx).
		Where("order_item_id = ?", orderItemID).
		Delete(&models.OrderItem{}).Error
}

// DeleteOrder removes the order and its items in one transaction.
func (d *OrderDAO) DeleteOrder(ctx context.Context, orderID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("order_id = ?", orderID).Delete(&models.Order{}).Error
	})
}
