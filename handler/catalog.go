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

type Catalog struct {
	Config         *config.Config
	CatalogService service.ICatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	staff := middleware.RequireRoles("Chef", "Cashier")

	g := r.Group("/v1/menu")
	{
		// menu browsing is open to diners at the table
		g.GET("", context.Wrap(h.ListItems))
		g.GET("/:item_id", context.Wrap(h.GetItem))

		g.POST("", authorize, staff, context.Wrap(h.CreateItem))
		g.PUT("", authorize, staff, context.Wrap(h.EditItem))
		g.DELETE("/:item_id", authorize, staff, context.Wrap(h.DeleteItem))

		g.POST("/ingredient", authorize, staff, context.Wrap(h.CreateIngredient))
		g.GET("/ingredient", authorize, staff, context.Wrap(h.ListIngredients))
	}
}

func (h *Catalog) ListItems(c *gin.Context) error {
	items, err := h.CatalogService.ListItems(c.Request.Context(), c.Query("query"), c.Query("category"))
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Catalog) GetItem(c *gin.Context) error {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		return response.InvalidRequest("item_id must be an integer")
	}

	item, err := h.CatalogService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Catalog) CreateItem(c *gin.Context) error {
	var req types.ItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	item, err := h.CatalogService.CreateItem(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Catalog) EditItem(c *gin.Context) error {
	var req types.ItemEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	item, err := h.CatalogService.EditItem(c.Request.Context(), req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Catalog) DeleteItem(c *gin.Context) error {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		return response.InvalidRequest("item_id must be an integer")
	}

	if err := h.CatalogService.DeleteItem(c.Request.Context(), itemID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Catalog) CreateIngredient(c *gin.Context) error {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	ingredient, err := h.CatalogService.CreateIngredient(c.Request.Context(), req.Name)
	if err != nil {
		return err
	}
	response.Success(c, ingredient)
	return nil
}

func (h *Catalog) ListIngredients(c *gin.Context) error {
	ingredients, err := h.CatalogService.ListIngredients(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, ingredients)
	return nil
}
