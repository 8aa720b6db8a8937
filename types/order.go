package types

import "time"

type OrderLineCreate struct {
	ItemID   int64  `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Remark   string `json:"remark"`
}

type OrderCreate struct {
	SessionID string            `json:"session_id" binding:"required"`
	Lines     []OrderLineCreate `json:"lines" binding:"required,min=1,dive"`
}

type OrderItemEdit struct {
	OrderItemID int64   `json:"order_item_id" binding:"required"`
	Quantity    *int    `json:"quantity" binding:"omitempty,gt=0"`
	Remark      *string `json:"remark"`
}

type OrderItemStatusEdit struct {
	OrderItemID int64  `json:"order_item_id" binding:"required"`
	NewStatus   string `json:"new_status" binding:"required,oneof=Ordered Preparing Serving Served"`
}

type OrderItemView struct {
	OrderItemID int64   `json:"order_item_id"`
	ItemID      int64   `json:"item_id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	LineTotal   float64 `json:"line_total"`
	Remark      string  `json:"remark,omitempty"`
	OrderStatus string  `json:"order_status"`
}

type OrderView struct {
	OrderID   int64           `json:"order_id"`
	UserID    *int64          `json:"user_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []OrderItemView `json:"items"`
}

type SessionOrders struct {
	SessionID string      `json:"session_id"`
	Orders    []OrderView `json:"orders"`
	Subtotal  float64     `json:"subtotal"`
}
