package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/auth"
	"github.com/omnistock/inventory-service/internal/inventory"
	"github.com/omnistock/inventory-service/internal/inventory/dto"
	"github.com/omnistock/inventory-service/internal/model"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger *zap.Logger
}

func NewInventoryHandler(uc inventory.UseCase, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inventory", h.List)
	rg.GET("/inventory/low-stock", h.LowStock)
	rg.GET("/inventory/:id", h.Get)
	rg.POST("/inventory/stock", h.Stock)

	rg.GET("/stockMovements", h.ListMovements)
	rg.POST("/stockMovements", h.CreateMovement)
	rg.GET("/stockMovements/:id", h.GetMovement)
	rg.DELETE("/stockMovements/:id", h.DeleteMovement)

	rg.POST("/reports", h.Report)
}

func (h *InventoryHandler) List(c *gin.Context) {
	records, err := h.uc.ListInventory(c.Request.Context(), auth.TenantID(c))
	if err != nil {
		h.logger.Error("failed to list inventory", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	records, err := h.uc.ListLowStock(c.Request.Context(), auth.TenantID(c))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	rec, err := h.uc.GetInventory(c.Request.Context(), auth.TenantID(c), c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, rec)
}

type stockRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Type      string `json:"type" binding:"required,oneof=IN OUT"`
	Notes     string `json:"notes"`
}

func (h *InventoryHandler) Stock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.uc.ApplyMovement(c.Request.Context(), &dto.ApplyMovementInput{
		TenantID:  auth.TenantID(c),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Type:      model.MovementType(req.Type),
		Notes:     req.Notes,
	})
	if err != nil {
		h.logger.Error("stock movement failed", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	verb := "added"
	if result.Movement.Type == model.MovementOut {
		verb = "removed"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Stock %s successfully", verb),
		"newQuantity": result.Record.Quantity,
	})
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	movements, err := h.uc.ListMovements(c.Request.Context(), &dto.MovementFilters{
		TenantID:  auth.TenantID(c),
		ProductID: c.Query("productId"),
		Type:      c.Query("type"),
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, movements)
}

// CreateMovement routes manual movement creation through the ledger, so a
// movement posted here still updates the on-hand quantity atomically.
func (h *InventoryHandler) CreateMovement(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.uc.ApplyMovement(c.Request.Context(), &dto.ApplyMovementInput{
		TenantID:  auth.TenantID(c),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Type:      model.MovementType(req.Type),
		Notes:     req.Notes,
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"movementId":  result.Movement.ID,
		"newQuantity": result.Record.Quantity,
	})
}

func (h *InventoryHandler) GetMovement(c *gin.Context) {
	m, err := h.uc.GetMovement(c.Request.Context(), auth.TenantID(c), c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *InventoryHandler) DeleteMovement(c *gin.Context) {
	if err := h.uc.DeleteMovement(c.Request.Context(), auth.TenantID(c), c.Param("id")); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stock movement deleted"})
}

type reportRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	ProductID string `json:"productId"`
	Type      string `json:"type"`
}

func (h *InventoryHandler) Report(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movements, err := h.uc.Report(c.Request.Context(), &dto.ReportInput{
		TenantID:  auth.TenantID(c),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		ProductID: req.ProductID,
		Type:      req.Type,
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, movements)
}
