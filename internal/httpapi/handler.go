package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_directors/internal/domain"
)

// DirectorFinder answers director threshold queries.
type DirectorFinder interface {
	GetDirectorsAbove(ctx context.Context, thresholdText string) (*domain.DirectorResponse, error)
}

type Options struct {
	// Limiter enables per-client rate limiting on /api routes when set.
	Limiter *LimiterStore
}

type Handler struct {
	directors DirectorFinder
	logger    *slog.Logger
}

func NewHandler(directors DirectorFinder, logger *slog.Logger) *Handler {
	return &Handler{
		directors: directors,
		logger:    logger,
	}
}

// NewRouter builds the gin engine serving the public API.
func NewRouter(h *Handler, opts Options) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(gin.Recovery(), requestLogger(h.logger))

	r.GET("/api/health", h.Health)

	api := r.Group("/api")
	if opts.Limiter != nil {
		api.Use(rateLimit(opts.Limiter))
	}
	api.GET("/directors", h.GetDirectors)

	return r
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// GetDirectors handles GET /api/directors?threshold=N.
func (h *Handler) GetDirectors(c *gin.Context) {
	resp, err := h.directors.GetDirectorsAbove(c.Request.Context(), c.Query("threshold"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
