package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medilabs/dcreport-api/internal/config"
	domainRepo "github.com/medilabs/dcreport-api/internal/domain/repository"
	"github.com/medilabs/dcreport-api/internal/presentation/http/handler"
	"github.com/medilabs/dcreport-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Case       *handler.CaseHandler
	Report     *handler.ReportHandler
	Dashboard  *handler.DashboardHandler
	Export     *handler.ExportHandler
	Suggestion *handler.SuggestionHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Logger          *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerCaseRoutes(v1, h, deps)
		registerReportRoutes(v1, h)
	}

	return router
}

func registerCaseRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	cases := v1.Group("/cases")
	{
		cases.GET("", h.Case.List)
		cases.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Case.Create)
		// Deletion uses POST with an explicit confirm flag rather than
		// DELETE so the intent travels in the body alongside the id set.
		cases.POST("/delete", h.Case.Delete)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/dc", h.Report.GetDCReport)
	}

	v1.GET("/dashboard", h.Dashboard.GetStats)
	v1.GET("/exports/dc", h.Export.Export)
	v1.GET("/suggestions", h.Suggestion.Get)
}
