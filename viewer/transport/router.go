package transport

import (
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/internal/validation"
	"github.com/imtaco/live-viewer/viewer"
)

type Router struct {
	viewer    Viewer
	wsOrigins []string
	engine    *gin.Engine
	logger    *log.Logger
}

// NewRouter serves the viewer API. allowedOrigins applies to both CORS and
// the event stream; an empty list allows every origin.
func NewRouter(v Viewer, allowedOrigins []string, logger *log.Logger) *Router {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(otelgin.Middleware("viewer"))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(allowedOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	engine.Use(cors.New(corsCfg))

	r := &Router{
		viewer:    v,
		wsOrigins: originHosts(allowedOrigins),
		engine:    engine,
		logger:    logger,
	}

	r.setupRoutes()
	return r
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) setupRoutes() {
	api := r.engine.Group("/api")
	api.GET("/state", r.getState)
	api.GET("/events", r.streamEvents)
	api.POST("/load", r.load)
	api.POST("/leave", r.leave)

	player := api.Group("/player")
	player.POST("/play", r.play)
	player.POST("/pause", r.pause)
	player.POST("/seek-live", r.seekLive)
	player.PUT("/volume", r.setVolume)
	player.PUT("/layer", r.selectLayer)

	r.engine.GET("/health", r.healthCheck)
}

func (r *Router) getState(c *gin.Context) {
	c.JSON(http.StatusOK, r.viewer.Snapshot().Get())
}

func (r *Router) load(c *gin.Context) {
	var req LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	loadRequests.Add(c.Request.Context(), 1)
	if err := r.viewer.Load(c.Request.Context(), req.Input); err != nil {
		status := loadStatus(err)
		r.logger.Warn("Load failed",
			log.String("input", req.Input),
			log.Int("status", status),
			log.Error(err))
		c.JSON(status, gin.H{
			"success": false,
			"error":   errors.Message(err),
		})
		return
	}

	c.JSON(http.StatusOK, r.viewer.Snapshot().Get())
}

func (r *Router) leave(c *gin.Context) {
	r.viewer.Leave(c.Request.Context())
	c.JSON(http.StatusOK, r.viewer.Snapshot().Get())
}

func (r *Router) play(c *gin.Context) {
	if err := r.viewer.Play(c.Request.Context()); err != nil {
		controlFailures.Add(c.Request.Context(), 1)
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   errors.Message(err),
		})
		return
	}
	c.JSON(http.StatusOK, r.viewer.Snapshot().Get())
}

func (r *Router) pause(c *gin.Context) {
	r.viewer.Pause()
	c.JSON(http.StatusOK, r.viewer.Snapshot().Get())
}

func (r *Router) seekLive(c *gin.Context) {
	r.viewer.SeekToLive(c.Request.Context())
	c.JSON(http.StatusOK, r.viewer.Snapshot().Get())
}

func (r *Router) setVolume(c *gin.Context) {
	var req VolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}
	r.viewer.SetVolume(*req.Volume)
	c.JSON(http.StatusOK, r.viewer.Snapshot().Get())
}

func (r *Router) selectLayer(c *gin.Context) {
	var req LayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}
	r.viewer.SelectLayer(req.URL)
	c.JSON(http.StatusOK, r.viewer.Snapshot().Get())
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

func validationFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "Validation failed",
		"details": validation.FormatValidationError(err),
	})
}

// originHosts turns CORS origins into the host patterns the websocket
// handshake matches against.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			hosts = append(hosts, u.Host)
			continue
		}
		hosts = append(hosts, o)
	}
	return hosts
}

func loadStatus(err error) int {
	switch errors.CodeOf(err) {
	case viewer.ErrInvalidInput:
		return http.StatusBadRequest
	case viewer.ErrToken, viewer.ErrConnection:
		return http.StatusBadGateway
	case viewer.ErrDisposed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
