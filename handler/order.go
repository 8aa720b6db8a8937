package handler

import (
	"strconv"

	"Tably/config"
	"Tably/middleware"
	"Tably/pkg/context"
	"Tably/pkg/response"
	"Tably/service"
	"Tably/types"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	optional := middleware.AuthOptional([]byte(h.Config.Jwt.Secret))
	kitchen := middleware.RequireRoles("Chef", "Cashier")

	g := r.Group("/v1/order")
	{
		// diners order as guests or logged-in members; the session id in
		// the body is what authorizes the write
		g.POST("", optional, context.Wrap(h.Create))
		g.GET("/session/:session_id", optional, context.Wrap(h.ListSessionOrders))

		g.PUT("/item", authorize, kitchen, context.Wrap(h.EditItem))
		g.PUT("/item/status", authorize, kitchen, context.Wrap(h.EditItemStatus))
		g.DELETE("/:order_id", authorize, kitchen, context.Wrap(h.DeleteOrder))
		g.DELETE("/item/:order_item_id", authorize, kitchen, context.Wrap(h.DeleteItem))
	}
}

func (h *Order) Create(c *gin.Context) error {
	var req types.OrderCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	view, err := h.OrderService.Create(c.Request.Context(), context.OptionalUserID(c), req)
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}

func (h *Order) ListSessionOrders(c *gin.Context) error {
	orders, err := h.OrderService.ListSessionOrders(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		return err
	}
	response.Success(c, orders)
	return nil
}

func (h *Order) EditItem(c *gin.Context) error {
	var req types.OrderItemEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	if err := h.OrderService.EditItem(c.Request.Context(), req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Order) EditItemStatus(c *gin.Context) error {
	var req types.OrderItemStatusEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	if err := h.OrderService.EditItemStatus(c.Request.Context(), req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Order) DeleteOrder(c *gin.Context) error {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		return response.InvalidRequest("order_id must be an integer")
	}

	if err := h.OrderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Order) DeleteItem(c *gin.Context) error {
	orderItemID, err := strconv.ParseInt(c.Param("order_item_id"), 10, 64)
	if err != nil {
		return response.InvalidRequest("order_item_id must be an integer")
	}

	if err := h.OrderService.DeleteItem(c.Request.Context(), orderItemID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
