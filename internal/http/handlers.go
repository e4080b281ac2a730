package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/ttyfind"
	"github.com/GriffinCanCode/ttyfind/internal/logging"
	"github.com/GriffinCanCode/ttyfind/internal/monitoring"
	"github.com/GriffinCanCode/ttyfind/internal/tracing"
)

// Version reported by the root and health endpoints.
const Version = "1.0.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	resolver *ttyfind.Resolver
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
	logger   *logging.Logger
	procRoot string
	instance string
	started  time.Time
}

// NewHandlers creates a new handler set
func NewHandlers(
	resolver *ttyfind.Resolver,
	metrics *monitoring.Metrics,
	tracer *tracing.Tracer,
	logger *logging.Logger,
	procRoot string,
) *Handlers {
	return &Handlers{
		resolver: resolver,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
		procRoot: procRoot,
		instance: uuid.NewString(),
		started:  time.Now(),
	}
}

// Root handles the service banner endpoint
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":  "ttyfind",
		"version":  Version,
		"instance": h.instance,
	})
}

// Health handles the health check endpoint
func (h *Handlers) Health(c *gin.Context) {
	drivers := h.resolver.Drivers()
	h.metrics.SetDriverEntries(len(drivers))

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"instance":  h.instance,
		"uptime":    time.Since(h.started).String(),
		"proc_root": h.procRoot,
		"drivers":   len(drivers),
	})
}

// ResolveTTY resolves the controlling terminal of the :pid path parameter.
// A missing or unverifiable terminal is 404; the pipeline exposes no
// failure detail beyond absence.
func (h *Handlers) ResolveTTY(c *gin.Context) {
	pid, err := parsePID(c.Param("pid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pid"})
		return
	}

	span, _ := h.tracer.StartSpan(c.Request.Context(), "resolve")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()
	span.SetTag("pid", c.Param("pid"))

	timer := monitoring.NewTimer(h.metrics)
	path, ok := h.resolver.Resolve(pid)
	if !ok {
		timer.Stop(monitoring.OutcomeUnresolved)
		span.SetTag("outcome", monitoring.OutcomeUnresolved)
		c.JSON(http.StatusNotFound, gin.H{
			"pid":      pid,
			"resolved": false,
		})
		return
	}
	timer.Stop(monitoring.OutcomeResolved)
	span.SetTag("outcome", monitoring.OutcomeResolved)

	h.logger.Debug("Resolved tty over HTTP",
		zap.Int("pid", pid),
		zap.String("tty", path))

	c.JSON(http.StatusOK, gin.H{
		"pid":      pid,
		"tty":      path,
		"resolved": true,
	})
}

// ListDrivers returns the parsed tty driver registry
func (h *Handlers) ListDrivers(c *gin.Context) {
	drivers := h.resolver.Drivers()
	h.metrics.SetDriverEntries(len(drivers))

	c.JSON(http.StatusOK, gin.H{
		"count":   len(drivers),
		"drivers": drivers,
	})
}

// MetricsJSON returns counter values as JSON for dashboards that do not
// scrape Prometheus
func (h *Handlers) MetricsJSON(c *gin.Context) {
	snapshot := h.metrics.GetSnapshot()

	c.JSON(http.StatusOK, gin.H{
		"requests_total": snapshot.TotalRequests,
		"errors_total":   snapshot.TotalErrors,
		"resolved":       snapshot.Resolved,
		"unresolved":     snapshot.Unresolved,
		"uptime":         time.Since(h.started).String(),
	})
}
