package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storage-ops/ordertool/services"
)

// OrderController serves the review API for single-order spot checks
type OrderController struct {
	enricher *services.EnrichmentService
}

// NewOrderController creates the controller with its enrichment service
func NewOrderController(enricher *services.EnrichmentService) *OrderController {
	return &OrderController{enricher: enricher}
}

// GetEnrichedOrder handles GET /api/v1/orders/:id/enriched - fetches the
// API-side enrichment for one order
func (ctrl *OrderController) GetEnrichedOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ORDER_ID",
				"message": "Order id must be a positive integer",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ctrl.enricher.Summarize(orderID),
	})
}

// HealthCheck handles GET /api/v1/health
func (ctrl *OrderController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order enrichment API is running",
	})
}
