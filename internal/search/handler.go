package search

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyfare/pkg/amadeus"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{
		service: s,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/search-flights", h.SearchByCodeHandler)
	api.POST("/search-by-city", h.SearchByCityHandler)
}

// SearchByCodeHandler godoc
// @Summary      Search flights between two IATA codes
// @Description  Runs a one-way flight-offer search and returns normalized flight records
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body CodeSearchRequest true "Search criteria"
// @Success      200 {array} FlightRecord
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/search-flights [post]
func (h *Handler) SearchByCodeHandler(c *gin.Context) {
	var req CodeSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required parameters.",
			"code":  ErrorCodeValidation,
		})
		return
	}

	flights, err := h.service.SearchByCode(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, flights)
}

// SearchByCityHandler godoc
// @Summary      Search flights between two named cities
// @Description  Resolves each city to an airport code, then searches flight offers
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body CitySearchRequest true "Search criteria"
// @Success      200 {array} FlightRecord
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/search-by-city [post]
func (h *Handler) SearchByCityHandler(c *gin.Context) {
	var req CitySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required parameters.",
			"code":  ErrorCodeValidation,
		})
		return
	}

	flights, err := h.service.SearchByCity(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, flights)
}

// sendError maps domain errors onto HTTP responses. Provider failures relay
// the provider's status and payload so callers keep the diagnostic detail.
func sendError(c *gin.Context, err error) {
	var notFound *CityNotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Could not find airports for the specified cities.",
			"code":  ErrorCodeCityNotFound,
		})
		return
	}

	var tokenErr *amadeus.TokenAcquisitionError
	if errors.As(err, &tokenErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           "Provider authentication failed.",
			"code":            ErrorCodeProviderFailure,
			"provider_status": tokenErr.Status,
			"provider_body":   tokenErr.Body,
		})
		return
	}

	var provErr *amadeus.ProviderSearchError
	if errors.As(err, &provErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           "Error while searching flights.",
			"code":            ErrorCodeProviderFailure,
			"provider_status": provErr.Status,
			"provider_body":   provErr.Body,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
