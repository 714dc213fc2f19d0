// controllers/metrics_controller.go
package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MetricsController struct {
	Svc *services.MetricsService
}

func NewMetricsController(svc *services.MetricsService) *MetricsController {
	return &MetricsController{Svc: svc}
}

func (h *MetricsController) GetMetrics(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	out, err := h.Svc.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
