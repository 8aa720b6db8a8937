package models

import (
	"time"
)

const (
	OrderStatusOrdered   = "Ordered"
	OrderStatusPreparing = "Preparing"
	OrderStatusServing   = "Serving"
	OrderStatusServed    = "Served"
)

// Order groups the line items created in one request against a session.
// UserID is nil for guest orders placed with only a table-session token.
type Order struct {
	OrderID   int64     `gorm:"column:order_id;primaryKey" json:"order_id"`
	SessionID string    `gorm:"column:session_id;type:varchar(36);not null;index:idx_order_session" json:"session_id"`
	UserID    *int64    `gorm:"column:user_id;index:idx_order_user" json:"user_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots the item's unit price at order time. The snapshot is
// immutable: later catalog price edits never change a historical bill.
// Line total is always price * quantity.
type OrderItem struct {
	OrderItemID int64     `gorm:"column:order_item_id;primaryKey" json:"order_item_id"`
	OrderID     int64     `gorm:"column:order_id;not null;index:idx_item_order" json:"order_id"`
	ItemID      int64     `gorm:"column:item_id;not null" json:"item_id"`
	Quantity    int       `gorm:"column:quantity;not null" json:"quantity"`
	Price       float64   `gorm:"column:price;not null" json:"price"`
	Remark      string    `gorm:"column:remark;type:varchar(255)" json:"remark"`
	OrderStatus string    `gorm:"column:order_status;type:varchar(16);not null;default:'Ordered'" json:"order_status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
