package service

import (
	"context"
	"fmt"

	"Tably/dao"
	"Tably/models"
	"Tably/pkg/response"
	"Tably/pkg/snowflake"
	"Tably/types"

	"gorm.io/gorm"
)

// statusRank orders the fulfillment pipeline. Transitions must strictly
// advance; there is no way back once a dish moves forward.
var statusRank = map[string]int{
	models.OrderStatusOrdered:   0,
	models.OrderStatusPreparing: 1,
	models.OrderStatusServing:   2,
	models.OrderStatusServed:    3,
}

func ValidateStatusTransition(from, to string) error {
	fromRank, ok := statusRank[from]
	if !ok {
		return response.InvalidRequest(fmt.Sprintf("unknown order status %q", from))
	}
	toRank, ok := statusRank[to]
	if !ok {
		return response.InvalidRequest(fmt.Sprintf("unknown order status %q", to))
	}
	if toRank <= fromRank {
		return response.InvalidRequest(fmt.Sprintf("order status cannot move from %s to %s", from, to))
	}
	return nil
}

type OrderService struct {
	DB         *gorm.DB
	SessionSvc ISessionService
	OrderDAO   *dao.OrderDAO
	ItemDAO    *dao.ItemDAO
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	Create(ctx context.Context, userID *int64, req types.OrderCreate) (*types.OrderView, error)
	ListSessionOrders(ctx context.Context, sessionID string) (*types.SessionOrders, error)
	EditItem(ctx context.Context, req types.OrderItemEdit) error
	EditItemStatus(ctx context.Context, req types.OrderItemStatusEdit) error
	DeleteOrder(ctx context.Context, orderID int64) error
	DeleteItem(ctx context.Context, orderItemID int64) error
}

// Create records one order against an Active session. The session is
// re-verified under a row lock inside the transaction, so an order cannot
// commit against a session a concurrent checkout is completing. Every line
// resolves its item inside the transaction and snapshots the current unit
// price; any missing or soft-deleted item rejects the whole order, so a
// bill can never silently lose lines.
func (s *OrderService) Create(ctx context.Context, userID *int64, req types.OrderCreate) (*types.OrderView, error) {
	order := models.Order{
		OrderID:   snowflake.GenID(),
		SessionID: req.SessionID,
		UserID:    userID,
	}
	view := types.OrderView{
		OrderID: order.OrderID,
		UserID:  userID,
		Items:   make([]types.OrderItemView, 0, len(req.Lines)),
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.SessionSvc.VerifyLocked(ctx, tx, req.SessionID); err != nil {
			return err
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range req.Lines {
			var item models.Item
			err := tx.Where("item_id = ?", line.ItemID).First(&item).Error
			if err == gorm.ErrRecordNotFound {
				return response.InvalidRequest(fmt.Sprintf("item %d is not available", line.ItemID))
			}
			if err != nil {
				return err
			}

			orderItem := models.OrderItem{
				OrderItemID: snowflake.GenID(),
				OrderID:     order.OrderID,
				ItemID:      item.ItemID,
				Quantity:    line.Quantity,
				Price:       item.Price,
				Remark:      line.Remark,
				OrderStatus: models.OrderStatusOrdered,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}

			view.Items = append(view.Items, types.OrderItemView{
				OrderItemID: orderItem.OrderItemID,
				ItemID:      item.ItemID,
				Name:        item.Name,
				Quantity:    orderItem.Quantity,
				Price:       orderItem.Price,
				LineTotal:   LineTotal(orderItem),
				Remark:      orderItem.Remark,
				OrderStatus: orderItem.OrderStatus,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view.CreatedAt = order.CreatedAt
	return &view, nil
}

// ListSessionOrders returns the session's orders with flattened items,
// the feed voucher validation and checkout both consume.
func (s *OrderService) ListSessionOrders(ctx context.Context, sessionID string) (*types.SessionOrders, error) {
	sess, err := s.SessionSvc.Verify(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	orders, err := s.OrderDAO.ListBySession(ctx, sess.SessionID)
	if err != nil {
		return nil, err
	}
	items, err := s.OrderDAO.ItemsBySession(ctx, sess.SessionID)
	if err != nil {
		return nil, err
	}

	names, err := s.itemNames(ctx, items)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[int64][]types.OrderItemView, len(orders))
	var subtotal float64
	for _, item := range items {
		subtotal += LineTotal(item)
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], types.OrderItemView{
			OrderItemID: item.OrderItemID,
			ItemID:      item.ItemID,
			Name:        names[item.ItemID],
			Quantity:    item.Quantity,
			Price:       item.Price,
			LineTotal:   LineTotal(item),
			Remark:      item.Remark,
			OrderStatus: item.OrderStatus,
		})
	}

	result := types.SessionOrders{
		SessionID: sess.SessionID,
		Orders:    make([]types.OrderView, 0, len(orders)),
		Subtotal:  subtotal,
	}
	for _, order := range orders {
		result.Orders = append(result.Orders, types.OrderView{
			OrderID:   order.OrderID,
			UserID:    order.UserID,
			CreatedAt: order.CreatedAt,
			Items:     itemsByOrder[order.OrderID],
		})
	}
	return &result, nil
}

func (s *OrderService) EditItem(ctx context.Context, req types.OrderItemEdit) error {
	item, err := s.OrderDAO.GetItem(ctx, req.OrderItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return response.NotFound("this order item does not exist")
	}

	updates := map[string]interface{}{}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Remark != nil {
		updates["remark"] = *req.Remark
	}
	if len(updates) == 0 {
		return nil
	}
	return s.OrderDAO.UpdateItem(ctx, req.OrderItemID, updates)
}

func (s *OrderService) EditItemStatus(ctx context.Context, req types.OrderItemStatusEdit) error {
	item, err := s.OrderDAO.GetItem(ctx, req.OrderItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return response.NotFound("this order item does not exist")
	}

	if err := ValidateStatusTransition(item.OrderStatus, req.NewStatus); err != nil {
		return err
	}
	return s.OrderDAO.UpdateItem(ctx, req.OrderItemID, map[string]interface{}{
		"order_status": req.NewStatus,
	})
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	order, err := s.OrderDAO.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return response.NotFound("this order does not exist")
	}
	return s.OrderDAO.DeleteOrder(ctx, orderID)
}

func (s *OrderService) DeleteItem(ctx context.Context, orderItemID int64) error {
	item, err := s.OrderDAO.GetItem(ctx, orderItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return response.NotFound("this order item does not exist")
	}
	return s.OrderDAO.DeleteItem(ctx, orderItemID)
}

// itemNames resolves catalog names including soft-deleted items, so old
// orders keep their labels after a menu item is retired.
func (s *OrderService) itemNames(ctx context.Context, items []models.OrderItem) (map[int64]string, error) {
	if len(items) == 0 {
		return map[int64]string{}, nil
	}

	idSet := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, seen := idSet[item.ItemID]; seen {
			continue
		}
		idSet[item.ItemID] = struct{}{}
		ids = append(ids, item.ItemID)
	}

	var catalog []models.Item
	if err := s.DB.WithContext(ctx).Unscoped().
		Where("item_id IN ?", ids).
		Find(&catalog).Error; err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(catalog))
	for _, item := range catalog {
		names[item.ItemID] = item.Name
	}
	return names, nil
}
