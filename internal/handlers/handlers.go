package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cardfolio/cardfolio/internal/notify"
)

// Handlers holds all dependencies for our handlers.
type Handlers struct {
	DB        *sql.DB         // Shared connection pool
	Notifier  notify.Notifier // Out-of-band OTP delivery (simulated)
	Logger    *zap.Logger
	JWTSecret string
}

// storageError converts a persistence failure into the 500 response the API
// contract promises: the store's message, verbatim, as the only diagnostic.
func (h *Handlers) storageError(c *gin.Context, err error) {
	if h.Logger != nil {
		h.Logger.Error("storage failure",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
