package api

import (
	"net/http"
	"strconv"
	"time"

	"catalog-service/config"
	"catalog-service/internal/apperr"
	"catalog-service/internal/service"
	"catalog-service/internal/todo"
	"catalog-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler contains HTTP handlers
type Handler struct {
	catalog   *service.CatalogService
	inquiries *service.InquiryService
	todos     *todo.Store
	admin     config.AdminConfig
	backend   string
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler. backend names the active product
// store and is reported by /ready.
func NewHandler(catalog *service.CatalogService, inquiries *service.InquiryService, todos *todo.Store, admin config.AdminConfig, backend string) *Handler {
	return &Handler{
		catalog:   catalog,
		inquiries: inquiries,
		todos:     todos,
		admin:     admin,
		backend:   backend,
		logger:    util.GetLogger(),
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())
	router.Use(corsMiddleware(h.admin.Header))

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.POST("/inquiry", h.submitInquiry)

		api.GET("/todos", h.listTodos)
		api.POST("/todos", h.createTodo)
		api.PATCH("/todos/:id", h.updateTodo)
		api.DELETE("/todos/:id", h.deleteTodo)
	}

	admin := api.Group("/admin", adminGuard(h.admin, h.logger))
	{
		admin.GET("/inquiries", h.listInquiries)
		admin.PATCH("/inquiries/:id", h.updateInquiryStatus)

		admin.POST("/products", h.createProduct)
		admin.PATCH("/products/:id", h.updateProduct)
		admin.DELETE("/products/:id", h.deleteProduct)

		admin.GET("/stats", h.stats)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck reports which product store is serving
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"backend": h.backend,
		"time":    time.Now().Unix(),
	})
}

// respondError writes {"error": msg} with the status of err's kind.
// Unknown errors are logged and hidden behind a generic message.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}

	c.JSON(status, gin.H{"error": apperr.PublicMessage(err)})
}

// respondBindError answers a body that could not be decoded or validated
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
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
