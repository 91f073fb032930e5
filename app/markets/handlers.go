package markets

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazarkua/polydebate/app/api"
	"github.com/bazarkua/polydebate/internal/gamma"
	"github.com/bazarkua/polydebate/models"
)

// Handler handles HTTP requests for markets
type Handler struct {
	service Service
}

// NewHandler creates a new markets handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetMarkets returns a page of normalized markets
// @Summary List markets
// @Description Get active prediction markets, optionally filtered by category or tag
// @Tags markets
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Param category query string false "Category name, or breaking/trending for volume ranking"
// @Param tag_id query string false "Upstream tag id filter"
// @Param closed query bool false "Include closed markets" default(false)
// @Success 200 {object} api.Response{data=MarketListResponse}
// @Failure 400 {object} api.Response
// @Failure 502 {object} api.Response
// @Router /api/v1/markets [get]
func (h *Handler) GetMarkets(c *gin.Context) {
	var req ListMarketsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.service.ListMarkets(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "list markets")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Markets retrieved successfully", result)
}

// GetMarketByID returns the detail view of one market
// @Summary Get market
// @Description Get a single market with outcome prices and liquidity figures
// @Tags markets
// @Produce json
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=models.MarketDetail}
// @Failure 404 {object} api.Response
// @Failure 502 {object} api.Response
// @Router /api/v1/markets/{id} [get]
func (h *Handler) GetMarketByID(c *gin.Context) {
	id := c.Param("id")

	market, err := h.service.GetMarket(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, "get market")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Market retrieved successfully", market)
}

func (h *Handler) handleServiceError(c *gin.Context, err error, operation string) {
	var notFound *gamma.NotFoundError
	if errors.As(err, &notFound) {
		api.NotFoundResponse(c, "Market "+notFound.MarketID)
		return
	}

	var upstream *gamma.UpstreamError
	if errors.As(err, &upstream) {
		api.BadGatewayResponse(c, "Polymarket API error")
		return
	}

	switch {
	case errors.Is(err, models.ErrInvalidMarketID),
		errors.Is(err, models.ErrInvalidLimit),
		errors.Is(err, models.ErrInvalidOffset),
		errors.Is(err, models.ErrInvalidCategoryName):
		api.BadRequestResponse(c, err.Error())
	default:
		api.InternalErrorResponse(c, "Failed to "+operation)
	}
}
