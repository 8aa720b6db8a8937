package handler

import (
	"Tably/config"
	"Tably/middleware"
	"Tably/pkg/context"
	"Tably/pkg/response"
	"Tably/service"
	"Tably/types"

	"github.com/gin-gonic/gin"
)

type Voucher struct {
	Config         *config.Config
	VoucherService service.IVoucherService
}

func (h *Voucher) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	optional := middleware.AuthOptional([]byte(h.Config.Jwt.Secret))
	manager := middleware.RequireRoles()

	g := r.Group("/v1/voucher")
	{
		g.POST("", authorize, manager, context.Wrap(h.Create))
		g.GET("/:voucher_code", authorize, manager, context.Wrap(h.Get))
		g.DELETE("/:voucher_code", authorize, manager, context.Wrap(h.Delete))

		// guests may apply vouchers without member-only constraints
		g.POST("/apply", optional, context.Wrap(h.Apply))
	}
}

func (h *Voucher) Create(c *gin.Context) error {
	var req types.VoucherCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	voucher, err := h.VoucherService.Create(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, voucher)
	return nil
}

func (h *Voucher) Get(c *gin.Context) error {
	voucher, err := h.VoucherService.Get(c.Request.Context(), c.Param("voucher_code"))
	if err != nil {
		return err
	}
	response.Success(c, voucher)
	return nil
}

func (h *Voucher) Delete(c *gin.Context) error {
	if err := h.VoucherService.Delete(c.Request.Context(), c.Param("voucher_code")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Voucher) Apply(c *gin.Context) error {
	var req types.VoucherApply
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	use, err := h.VoucherService.Apply(c.Request.Context(), context.OptionalUserID(c), req)
	if err != nil {
		return err
	}
	response.Success(c, use)
	return nil
}
