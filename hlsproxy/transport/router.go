package transport

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/imtaco/live-viewer/hlsproxy"
	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
)

const proxyPath = "/api/hls-proxy"

type Router struct {
	fetcher hlsproxy.Fetcher
	origin  string
	engine  *gin.Engine
	logger  *log.Logger
}

// NewRouter serves the proxy. origin is prepended to legacy path-style
// requests.
func NewRouter(fetcher hlsproxy.Fetcher, origin string, logger *log.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(otelgin.Middleware("hls-proxy"))

	r := &Router{
		fetcher: fetcher,
		origin:  strings.TrimRight(origin, "/"),
		engine:  engine,
		logger:  logger,
	}

	r.setupRoutes()
	return r
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) setupRoutes() {
	r.engine.GET(proxyPath, r.proxy)
	r.engine.GET(proxyPath+"/*path", r.proxy)
	r.engine.OPTIONS(proxyPath, r.preflight)
	r.engine.OPTIONS(proxyPath+"/*path", r.preflight)
	r.engine.GET("/health", r.healthCheck)
}

func allowCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
}

func (r *Router) preflight(c *gin.Context) {
	allowCORS(c)
	c.Status(http.StatusOK)
}

func (r *Router) proxy(c *gin.Context) {
	ctx := c.Request.Context()
	allowCORS(c)

	target, legacy := r.target(c)
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing url parameter",
		})
		return
	}

	proxyRequests.Add(ctx, 1, metric.WithAttributes(attribute.Bool("legacy", legacy)))
	r.logger.Debug("Fetching HLS", log.String("url", target), log.Bool("legacy", legacy))

	resp, err := r.fetcher.Fetch(ctx, target)
	switch {
	case err == nil:
		c.Data(resp.Status, resp.ContentType, resp.Body)
	case errors.Is(err, hlsproxy.ErrUpstreamStatus) && resp != nil:
		r.logger.Warn("Upstream error response",
			log.String("url", target),
			log.Int("status", resp.Status))
		proxyFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "status")))
		c.JSON(resp.Status, gin.H{
			"error": fmt.Sprintf("Failed to fetch HLS content: %d", resp.Status),
		})
	default:
		r.logger.Error("Failed to fetch HLS", log.String("url", target), log.Error(err))
		proxyFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "network")))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch HLS content",
		})
	}
}

// target prefers the url query parameter. gin has already percent-decoded
// it. Without one the escaped request path below the proxy prefix is
// appended to the origin as sent.
func (r *Router) target(c *gin.Context) (string, bool) {
	if u := c.Query("url"); u != "" {
		return u, false
	}
	p := strings.TrimPrefix(c.Request.URL.EscapedPath(), proxyPath)
	if p == "" || p == "/" {
		return "", true
	}
	if c.Request.URL.RawQuery != "" {
		p += "?" + c.Request.URL.RawQuery
	}
	return r.origin + p, true
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
