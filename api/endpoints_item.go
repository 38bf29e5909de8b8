package api

import (
	"context"
	"net/http"

	"github.com/Aidin1998/apiregistry/common/apiutil"
	"github.com/gin-gonic/gin"
)

// itemHandler serves /endpoints/:id.
type itemHandler struct {
	endpoints EndpointService
}

func (h *itemHandler) get(c *gin.Context) {
	endpoint, err := h.endpoints.Get(context.WithoutCancel(c.Request.Context()), c.Param("id"))
	if err != nil {
		apiutil.Fail(c, err, "Failed to fetch API endpoint")
		return
	}
	c.JSON(http.StatusOK, endpoint)
}

func (h *itemHandler) update(c *gin.Context) {
	input, ok := bindInput(c, "Failed to update API endpoint")
	if !ok {
		return
	}

	endpoint, err := h.endpoints.Update(context.WithoutCancel(c.Request.Context()), c.Param("id"), input)
	if err != nil {
		apiutil.Fail(c, err, "Failed to update API endpoint")
		return
	}
	c.JSON(http.StatusOK, endpoint)
}

func (h *itemHandler) delete(c *gin.Context) {
	if err := h.endpoints.Delete(context.WithoutCancel(c.Request.Context()), c.Param("id")); err != nil {
		apiutil.Fail(c, err, "Failed to delete API endpoint")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "API endpoint deleted successfully"})
}
