package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bizdash/internal/middleware"
	"bizdash/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID_PropagatesIDAndLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		ctx := c.Request.Context()
		assert.Equal(t, "abc-123", contextutil.GetRequestID(ctx))
		contextutil.GetLogger(ctx, nil).Info("ping handled")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	// the context logger is pre-tagged with the request id
	entries := logs.FilterMessage("ping handled").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "abc-123", entries[0].ContextMap()["request_id"])
}

func TestRequestID_GeneratedWhenHeaderAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
