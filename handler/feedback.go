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

type Feedback struct {
	Config          *config.Config
	FeedbackService service.IFeedbackService
}

func (h *Feedback) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	diners := middleware.RequireRoles("Customer")

	g := r.Group("/v1/review", authorize, diners)
	{
		g.GET("", context.Wrap(h.ListReviews))
		g.POST("", context.Wrap(h.AddReview))
		g.PUT("", context.Wrap(h.EditReview))
		g.DELETE("/:review_id", context.Wrap(h.DeleteReview))
	}
}

func (h *Feedback) ListReviews(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}

	var itemID *int64
	if raw := c.Query("item_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.InvalidRequest("item_id must be an integer")
		}
		itemID = &id
	}

	reviews, err := h.FeedbackService.ListReviews(c.Request.Context(), userID, context.GetRole(c), itemID)
	if err != nil {
		return err
	}
	response.Success(c, reviews)
	return nil
}

func (h *Feedback) AddReview(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}

	var req types.ReviewCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	review, err := h.FeedbackService.AddReview(c.Request.Context(), userID, req)
	if err != nil {
		return err
	}
	response.Success(c, review)
	return nil
}

func (h *Feedback) EditReview(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}

	var req types.ReviewEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidRequest(err.Error())
	}

	review, err := h.FeedbackService.EditReview(c.Request.Context(), userID, context.GetRole(c), req)
	if err != nil {
		return err
	}
	response.Success(c, review)
	return nil
}

func (h *Feedback) DeleteReview(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}

	reviewID, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil {
		return response.InvalidRequest("review_id must be an integer")
	}

	if err := h.FeedbackService.DeleteReview(c.Request.Context(), userID, context.GetRole(c), reviewID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
