package server

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/assessgen/internal/logger"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type RouterConfig struct {
	AssessmentHandler *AssessmentHandler
	HealthHandler     *HealthHandler

	// RatePerMinute limits generation requests per client IP.
	RatePerMinute int

	Log *logger.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Log != nil {
		r.Use(requestLogger(cfg.Log))
	}
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	if cfg.AssessmentHandler != nil {
		limit := RateLimit(cfg.RatePerMinute)

		r.GET("/", cfg.AssessmentHandler.Form)
		r.POST("/", limit, cfg.AssessmentHandler.Submit)

		api := r.Group("/api")
		{
			api.GET("/grades", cfg.AssessmentHandler.Grades)
			api.POST("/assessments", limit, cfg.AssessmentHandler.Create)
		}
	}

	return r
}

// requestLogger logs one line per request.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
