package categories

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bazarkua/polydebate/app/api"
	"github.com/bazarkua/polydebate/internal/gamma"
)

// Handler handles HTTP requests for categories
type Handler struct {
	service Service
}

// NewHandler creates a new categories handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetCategories returns every known category
// @Summary List categories
// @Description Get all market categories with their market counts
// @Tags categories
// @Produce json
// @Success 200 {object} api.Response{data=[]models.Category}
// @Failure 502 {object} api.Response
// @Router /api/v1/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		var upstream *gamma.UpstreamError
		if errors.As(err, &upstream) {
			api.BadGatewayResponse(c, "Polymarket API error")
			return
		}
		api.InternalErrorResponse(c, "Failed to list categories")
		return
	}

	api.ListResponse(c, "Categories retrieved successfully", categories, len(categories))
}
