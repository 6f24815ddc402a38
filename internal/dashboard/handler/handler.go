package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/auth"
	"github.com/omnistock/inventory-service/internal/dashboard"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	uc     dashboard.UseCase
	logger *zap.Logger
}

func NewDashboardHandler(uc dashboard.UseCase, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: log}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/home/stats", h.Stats)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.uc.GetStats(c.Request.Context(), auth.TenantID(c))
	if err != nil {
		h.logger.Error("failed to fetch dashboard stats", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, stats)
}
