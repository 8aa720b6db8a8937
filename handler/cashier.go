package handler

import (
	"time"

	"Tably/config"
	"Tably/middleware"
	"Tably/pkg/context"
	"Tably/pkg/response"
	"Tably/service"
	"Tably/types"

	"github.com/gin-gonic/gin"
)

type Cashier struct {
	Config         *config.Config
	CashierService service.ICashierService
}

func (h *Cashier) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	cashier := middleware.RequireRoles("Cashier")
	manager := middleware.RequireRoles()

	g := r.Group("/v1/cashier", authorize)
	{
		g.GET("/preview/:session_id", cashier, context.Wrap(h.Preview))
		g.POST("/checkout", cashier, context.Wrap(h.Checkout))

		g.GET("/analytics", manager, context.Wrap(h.Analytics))
		g.GET("/stats", manager, context.Wrap(h.Stats))
	}
}

func (h *Cashier) Preview(c *gin.Context) error {
	receipt, err := h.CashierService.Preview(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		return err
	}
	response.Success(c, receipt)
	return nil
}

func (h *Cashier) Checkout(c *gin.Context) error {
	var req types.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	cashierID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}

	receipt, err := h.CashierService.Checkout(c.Request.Context(), req.SessionID, req.PaymentMethod, cashierID)
	if err != nil {
		return err
	}
	response.Success(c, receipt)
	return nil
}

// Analytics returns raw checkout records between ?min and ?max (RFC 3339),
// defaulting to the last 30 days.
func (h *Cashier) Analytics(c *gin.Context) error {
	now := time.Now()
	min := now.AddDate(0, 0, -30)
	max := now

	if v := c.Query("min"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return response.InvalidRequest("min must be RFC 3339")
		}
		min = parsed
	}
	if v := c.Query("max"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return response.InvalidRequest("max must be RFC 3339")
		}
		max = parsed
	}
	if max.Before(min) {
		return response.InvalidRequest("max must not precede min")
	}

	records, err := h.CashierService.Analytics(c.Request.Context(), min, max)
	if err != nil {
		return err
	}
	response.Success(c, records)
	return nil
}

func (h *Cashier) Stats(c *gin.Context) error {
	summary, err := h.CashierService.Stats(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, summary)
	return nil
}
