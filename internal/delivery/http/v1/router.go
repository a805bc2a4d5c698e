package v1

import (
	"net/http"
	"time"

	"clinic-booking-backend/config"
	"clinic-booking-backend/internal/delivery/http/middleware"
	"clinic-booking-backend/internal/delivery/http/response"
	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AppointmentUC domain.AppointmentUsecase
	HealthUC      usecase.HealthUsecase
	Config        *config.Config
	// Gatherer backs /metrics; nil uses the default registry
	Gatherer prometheus.Gatherer
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins, deps.Config.ProductionOrigin)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalLimit, window)))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		var status map[string]string
		if deps.HealthUC != nil {
			status = deps.HealthUC.Check(c.Request.Context())
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	submitLimit := middleware.RateLimitMiddleware(middleware.SubmitRateLimitConfig(deps.Config.RateLimitSubmitLimit, window))
	NewAppointmentHandler(v1, deps.AppointmentUC, submitLimit)
	NewContactHandler(v1, deps.AppointmentUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
