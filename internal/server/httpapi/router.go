// Package httpapi is the REST transport of the server: a gin router, the
// identity middleware and one handler per endpoint.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/auth"
	"github.com/mdrrmo4516/mobile2026/internal/server/observability"
	"github.com/mdrrmo4516/mobile2026/internal/server/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether the backing store is reachable.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

// Services bundles the application operations the handlers call.
type Services struct {
	Users     *services.UserService
	Incidents *services.IncidentService
	Hotlines  *services.HotlineService
	Locations *services.LocationService
	UserData  *services.UserDataService
	Status    *services.StatusService
}

type Handler struct {
	svc            Services
	resolver       *auth.Resolver
	ready          ReadinessChecker
	metrics        *observability.Metrics
	logger         logging.Logger
	requestTimeout time.Duration
}

// Options configures NewHandler. Metrics may be nil.
type Options struct {
	Services       Services
	Resolver       *auth.Resolver
	Ready          ReadinessChecker
	Metrics        *observability.Metrics
	Logger         logging.Logger
	RequestTimeout time.Duration
}

func NewHandler(o Options) *Handler {
	return &Handler{
		svc:            o.Services,
		resolver:       o.Resolver,
		ready:          o.Ready,
		metrics:        o.Metrics,
		logger:         o.Logger.With("module", "http"),
		requestTimeout: o.RequestTimeout,
	}
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.accessLog(), h.requestDeadline())

	r.GET("/healthz", h.healthz)
	r.GET("/readyz", h.readyz)
	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.metrics.Gatherer(), promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	api.GET("/", h.root)

	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.GET("/auth/me", h.requireAuth(), h.me)
	api.POST("/auth/logout", h.requireAuth(), h.logout)

	api.POST("/status", h.createStatusCheck)
	api.GET("/status", h.listStatusChecks)
	api.GET("/hotlines", h.listHotlines)
	api.POST("/incidents", h.optionalAuth(), h.submitIncident)
	api.GET("/incidents", h.listIncidents)
	api.GET("/map/locations", h.listLocations)
	api.GET("/checklist", h.goBagChecklist)

	user := api.Group("/user", h.requireAuth())
	user.POST("/emergency-plan", h.savePlan)
	user.GET("/emergency-plan", h.getPlan)
	user.POST("/checklist", h.saveChecklist)
	user.GET("/checklist", h.getChecklist)

	api.POST("/admin/bootstrap", h.bootstrap)

	admin := api.Group("/admin", h.requireAuth(), h.requireAdmin())
	admin.GET("/incidents", h.adminListIncidents)
	admin.GET("/incidents/:id", h.adminGetIncident)
	admin.PATCH("/incidents/:id", h.adminUpdateIncident)
	admin.DELETE("/incidents/:id", h.adminDeleteIncident)
	admin.GET("/hotlines", h.listHotlines)
	admin.POST("/hotlines", h.adminCreateHotline)
	admin.PUT("/hotlines/:id", h.adminUpdateHotline)
	admin.DELETE("/hotlines/:id", h.adminDeleteHotline)
	admin.GET("/locations", h.listLocations)
	admin.POST("/locations", h.adminCreateLocation)
	admin.PUT("/locations/:id", h.adminUpdateLocation)
	admin.DELETE("/locations/:id", h.adminDeleteLocation)

	return r
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "MDRRMO Pio Duran Emergency App API"})
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) readyz(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready.Ping(c.Request.Context()); err != nil {
			h.logger.Warn(c.Request.Context(), "store not ready", "error", err.Error())
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
