package apiutil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aidin1998/apiregistry/common/apiutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	router := gin.New()
	router.Use(apiutil.RequestIDMiddleware())
	router.GET("/x", func(c *gin.Context) {
		seen = apiutil.RequestID(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	_, err := uuid.Parse(w.Header().Get(apiutil.RequestIDHeader))
	assert.NoError(t, err)
	assert.Equal(t, w.Header().Get(apiutil.RequestIDHeader), seen)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(apiutil.RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(apiutil.RequestIDHeader))
	assert.Equal(t, "abc-123", seen)
}
