package api

import (
	"context"
	"net/http"

	"github.com/Aidin1998/apiregistry/common/apiutil"
	"github.com/Aidin1998/apiregistry/pkg/errors"
	"github.com/Aidin1998/apiregistry/pkg/models"
	"github.com/gin-gonic/gin"
)

// collectionHandler serves /endpoints.
type collectionHandler struct {
	endpoints EndpointService
}

// list returns every endpoint, newest first.
func (h *collectionHandler) list(c *gin.Context) {
	endpoints, err := h.endpoints.List(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		apiutil.Fail(c, err, "Failed to fetch API endpoints")
		return
	}
	c.JSON(http.StatusOK, endpoints)
}

// create registers a new endpoint.
func (h *collectionHandler) create(c *gin.Context) {
	input, ok := bindInput(c, "Failed to create API endpoint")
	if !ok {
		return
	}

	endpoint, err := h.endpoints.Create(context.WithoutCancel(c.Request.Context()), input)
	if err != nil {
		apiutil.Fail(c, err, "Failed to create API endpoint")
		return
	}
	c.JSON(http.StatusCreated, endpoint)
}

// bindInput decodes the JSON body. Required fields are checked by the service.
func bindInput(c *gin.Context, fallback string) (models.EndpointInput, bool) {
	var input models.EndpointInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apiutil.Fail(c, errors.Invalid.Explain("Invalid request body").Wrap(err), fallback)
		return input, false
	}
	return input, true
}
