package handler

import (
	"strconv"
	"time"

	"Tably/config"
	"Tably/middleware"
	"Tably/pkg/context"
	"Tably/pkg/response"
	"Tably/service"
	"Tably/types"

	"github.com/gin-gonic/gin"
)

type Equipment struct {
	Config           *config.Config
	EquipmentService service.IEquipmentService
}

func (h *Equipment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	kitchen := middleware.RequireRoles("Chef")

	g := r.Group("/v1/equipment/remark", authorize, kitchen)
	{
		g.GET("", context.Wrap(h.ListRemarks))
		g.POST("", context.Wrap(h.AddRemark))
		g.PUT("", context.Wrap(h.EditRemark))
		g.DELETE("/:remark_id", context.Wrap(h.DeleteRemark))
	}
}

func (h *Equipment) ListRemarks(c *gin.Context) error {
	filter := types.EquipmentRemarkFilter{
		EquipmentName: c.Query("equipment_name"),
		Status:        c.Query("status"),
	}
	if raw := c.Query("submit_date"); raw != "" {
		submitDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return response.InvalidRequest("submit_date must be YYYY-MM-DD")
		}
		filter.SubmitDate = &submitDate
	}

	remarks, err := h.EquipmentService.ListRemarks(c.Request.Context(), filter)
	if err != nil {
		return err
	}
	response.Success(c, remarks)
	return nil
}

func (h *Equipment) AddRemark(c *gin.Context) error {
	var req types.EquipmentRemarkCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	remark, err := h.EquipmentService.AddRemark(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, remark)
	return nil
}

func (h *Equipment) EditRemark(c *gin.Context) error {
	var req types.EquipmentRemarkEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	remark, err := h.EquipmentService.EditRemark(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, remark)
	return nil
}

func (h *Equipment) DeleteRemark(c *gin.Context) error {
	remarkID, err := strconv.ParseInt(c.Param("remark_id"), 10, 64)
	if err != nil {
		return response.InvalidRequest("remark_id must be an integer")
	}

	if err := h.EquipmentService.DeleteRemark(c.Request.Context(), remarkID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
