package context

import (
	"errors"
	"net/http"

	"Tably/pkg/log"
	"Tably/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// handler already wrote a response
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}

			// unexpected failures go to the log; clients only ever see
			// a generic message, never driver or storage detail
			log.L.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  "internal error",
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not set")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}

// OptionalUserID returns nil when the request carries no authenticated
// identity (guest flows gated by a table-session token instead of login).
func OptionalUserID(c *gin.Context) *int64 {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return nil
	}

	uid, ok := v.(int64)
	if !ok {
		return nil
	}

	return &uid
}

func GetRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}
