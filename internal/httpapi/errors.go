package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_directors/internal/domain"
)

const (
	msgUpstreamUnavailable = "upstream movie API unavailable"
	msgInternal            = "internal server error"
	msgTooManyRequests     = "too many requests"
)

// writeError maps the error taxonomy onto HTTP responses. It is the only
// place where errors become status codes.
func (h *Handler) writeError(c *gin.Context, err error) {
	var validation *domain.ValidationError
	var upstream *domain.UpstreamError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.As(err, &upstream):
		h.logger.Error("upstream failure", "page", upstream.Page, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": msgUpstreamUnavailable})
	default:
		h.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}
