package api

import (
	"net/http"
	"strconv"
	"time"

	"vastratrota-backend/internal/service"
	"vastratrota-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	authService      *service.AuthService
	catalogService   *service.CatalogService
	dealerService    *service.DealerService
	inventoryService *service.InventoryService
	saleService      *service.SaleService
	reportService    *service.ReportService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	authService *service.AuthService,
	catalogService *service.CatalogService,
	dealerService *service.DealerService,
	inventoryService *service.InventoryService,
	saleService *service.SaleService,
	reportService *service.ReportService,
) *Handler {
	return &Handler{
		authService:      authService,
		catalogService:   catalogService,
		dealerService:    dealerService,
		inventoryService: inventoryService,
		saleService:      saleService,
		reportService:    reportService,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/auth", h.login)

		apiGroup.GET("/dealers", h.getDealers)
		apiGroup.POST("/dealers", h.createDealer)
		apiGroup.PUT("/dealers", h.updateDealer)
		apiGroup.DELETE("/dealers", h.deleteDealer)

		apiGroup.GET("/inventory", h.getInventory)
		apiGroup.POST("/inventory", h.mutateInventory)

		apiGroup.GET("/products", h.getProducts)
		apiGroup.POST("/products", h.createProduct)
		apiGroup.PUT("/products", h.updateProduct)
		apiGroup.DELETE("/products", h.deleteProduct)

		apiGroup.GET("/sales", h.getSales)
		apiGroup.POST("/sales", h.recordSale)

		apiGroup.GET("/accounting", h.getAccounting)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// login handles credential checks and token issuance
func (h *Handler) login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Username and password required",
		})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   resp.Token,
		"user":    resp.User,
		"message": "Login successful",
	})
}

// getAccounting returns the ledger rollup for the reports view
func (h *Handler) getAccounting(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.Accounting(c.Request.Context()))
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
