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

type Table struct {
	Config         *config.Config
	TableService   service.ITableService
	SessionService service.ISessionService
}

func (h *Table) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	cashier := middleware.RequireRoles("Cashier")
	manager := middleware.RequireRoles()

	tables := r.Group("/v1/table", authorize)
	{
		tables.GET("", cashier, context.Wrap(h.List))
		tables.GET("/:table_id/availability", cashier, context.Wrap(h.Availability))

		// registry mutations are manager-only
		tables.POST("", manager, context.Wrap(h.Add))
		tables.POST("/bulk", manager, context.Wrap(h.BulkAdd))
		tables.PUT("", manager, context.Wrap(h.Edit))
		tables.DELETE("/:table_id", manager, context.Wrap(h.Delete))
	}

	sessions := r.Group("/v1/session", authorize, cashier)
	{
		sessions.POST("/open", context.Wrap(h.OpenSession))
		sessions.POST("/close", context.Wrap(h.CloseSession))
		sessions.PUT("", context.Wrap(h.EditSession))
	}
}

func (h *Table) List(c *gin.Context) error {
	tables, err := h.TableService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tables)
	return nil
}

func (h *Table) Availability(c *gin.Context) error {
	table, available, err := h.TableService.IsAvailable(c.Request.Context(), c.Param("table_id"))
	if err != nil {
		return err
	}
	response.Success(c, gin.H{
		"table":     table,
		"available": available,
	})
	return nil
}

func (h *Table) Add(c *gin.Context) error {
	var req types.TableCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	table, err := h.TableService.Add(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, table)
	return nil
}

func (h *Table) BulkAdd(c *gin.Context) error {
	var req types.TableBulkCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	tables, err := h.TableService.BulkAdd(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, tables)
	return nil
}

func (h *Table) Edit(c *gin.Context) error {
	var req types.TableEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	table, err := h.TableService.Edit(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, table)
	return nil
}

func (h *Table) Delete(c *gin.Context) error {
	if err := h.TableService.Delete(c.Request.Context(), c.Param("table_id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Table) OpenSession(c *gin.Context) error {
	var req types.SessionOpen
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	sess, table, err := h.SessionService.Open(c.Request.Context(), req.TableID, req.HeadCount)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{
		"session": sess,
		"table":   table,
	})
	return nil
}

func (h *Table) CloseSession(c *gin.Context) error {
	var req types.SessionClose
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	sess, err := h.SessionService.Close(c.Request.Context(), req.SessionID)
	if err != nil {
		return err
	}
	response.Success(c, sess)
	return nil
}

func (h *Table) EditSession(c *gin.Context) error {
	var req types.SessionEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	sess, err := h.SessionService.Edit(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, sess)
	return nil
}
