package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/nurselink/booking-api/internal/handler"
	appointmenthandler "github.com/nurselink/booking-api/internal/handler/appointment"
	authhandler "github.com/nurselink/booking-api/internal/handler/auth"
	directoryhandler "github.com/nurselink/booking-api/internal/handler/directory"
	profilehandler "github.com/nurselink/booking-api/internal/handler/profile"
	reviewhandler "github.com/nurselink/booking-api/internal/handler/review"
	"github.com/nurselink/booking-api/internal/middleware"
)

// Datetime layouts the iso8601 binding validator accepts.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

type Config struct {
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
	MetricsPrefix    string
}

type Router struct {
	engine       *gin.Engine
	auth         *middleware.AuthMiddleware
	authH        *authhandler.Handler
	directoryH   *directoryhandler.Handler
	appointmentH *appointmenthandler.Handler
	reviewH      *reviewhandler.Handler
	profileH     *profilehandler.Handler
	h            *handler.Handler
	metrics      *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH *authhandler.Handler,
	directoryH *directoryhandler.Handler,
	appointmentH *appointmenthandler.Handler,
	reviewH *reviewhandler.Handler,
	profileH *profilehandler.Handler,
	h *handler.Handler,
	log zerolog.Logger,
	cfg Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	registerValidations()

	r := &Router{
		engine:       engine,
		auth:         auth,
		authH:        authH,
		directoryH:   directoryH,
		appointmentH: appointmentH,
		reviewH:      reviewH,
		profileH:     profileH,
		h:            h,
		metrics:      initRouterMetrics(cfg.MetricsPrefix),
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.CORS(),
		r.metricsMiddleware(),
	)

	if cfg.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	r.setupHealthCheck()

	// Public routes
	r.authH.RegisterRoutes(&r.engine.RouterGroup)
	public := r.engine.Group("/api")
	r.directoryH.RegisterRoutes(public)
	r.appointmentH.RegisterPublicRoutes(public)
	r.reviewH.RegisterPublicRoutes(public)

	// Protected routes
	protected := r.engine.Group("/api")
	protected.Use(r.auth.Authenticate())
	r.appointmentH.RegisterRoutes(protected)
	r.reviewH.RegisterRoutes(protected)
	r.profileH.RegisterRoutes(protected)
}

func (r *Router) setupHealthCheck() {
	health := r.engine.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
	}
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// registerValidations adds the iso8601 rule to gin's validator engine.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, layout := range datetimeLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	})
}

func initRouterMetrics(prefix string) *routerMetrics {
	if prefix == "" {
		prefix = "booking_api"
	}
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
