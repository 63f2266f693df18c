package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"voicegst/internal/config"
	"voicegst/internal/handler"
	"voicegst/internal/metrics"
	"voicegst/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log *zap.Logger,
	m *metrics.Metrics,
	gstH *handler.GSTHandler,
	cmdH *handler.CommandHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Logger(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(m))
	}

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}
	if cfg.Swagger.Enabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")

	gst := v1.Group("/gst")
	gst.POST("/calculate", gstH.Calculate)
	gst.POST("/calculate-reverse", gstH.ReverseCalculate)
	gst.POST("/calculate-items", gstH.CalculateItems)
	gst.POST("/quarterly-return", gstH.QuarterlyReturn)
	gst.GET("/validate/:gstin", gstH.ValidateGSTIN)
	gst.GET("/rates", gstH.Rates)
	gst.GET("/rates/categories/:category", gstH.CategoryRate)
	gst.GET("/method", gstH.Method)
	gst.POST("/gstr1", gstH.GSTR1)
	gst.POST("/gstr1/export", gstH.ExportGSTR1)

	commands := v1.Group("/commands")
	commands.POST("/interpret", cmdH.Interpret)

	return r
}
