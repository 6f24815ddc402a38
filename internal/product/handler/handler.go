package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/auth"
	"github.com/omnistock/inventory-service/internal/product"
	"github.com/omnistock/inventory-service/internal/product/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)
	rg.POST("/products", h.Create)
	rg.GET("/products/:id", h.Get)
	rg.PUT("/products/:id", h.Update)
	rg.DELETE("/products/:id", h.Delete)
}

type productRequest struct {
	CategoryID   string          `json:"category_id"`
	Name         string          `json:"name" binding:"required"`
	SKU          string          `json:"sku" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	MinimumStock int             `json:"minimum_stock" binding:"gte=0"`
	ImageURL     string          `json:"image_url"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &dto.CreateProductInput{
		TenantID:     auth.TenantID(c),
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		Price:        req.Price,
		MinimumStock: req.MinimumStock,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.uc.GetProduct(c.Request.Context(), auth.TenantID(c), c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))

	products, count, err := h.uc.ListProducts(c.Request.Context(), &dto.ProductFilters{
		TenantID:   auth.TenantID(c),
		CategoryID: c.Query("categoryId"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": products, "total": count})
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), &dto.UpdateProductInput{
		ID:           c.Param("id"),
		TenantID:     auth.TenantID(c),
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		Price:        req.Price,
		MinimumStock: req.MinimumStock,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteProduct(c.Request.Context(), auth.TenantID(c), c.Param("id")); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
