package context

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Tably/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, h func(*gin.Context) error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/t", Wrap(h))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	r.ServeHTTP(w, req)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestWrapBizError(t *testing.T) {
	w, body := doRequest(t, func(c *gin.Context) error {
		return response.Conflict("table is not available")
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 409, body.Code)
	assert.Equal(t, "table is not available", body.Msg)
}

// Unexpected errors must never reach the client verbatim: driver errors
// carry DSNs and credentials.
func TestWrapHidesInternalErrors(t *testing.T) {
	w, body := doRequest(t, func(c *gin.Context) error {
		return errors.New("dial tcp 127.0.0.1:3306: access denied for user 'root' using password 'hunter2'")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 500, body.Code)
	assert.Equal(t, "internal error", body.Msg)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.NotContains(t, w.Body.String(), "3306")
}

func TestWrapNoErrorPassesThrough(t *testing.T) {
	w, body := doRequest(t, func(c *gin.Context) error {
		response.Success(c, gin.H{"ok": true})
		return nil
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, body.Code)
}
