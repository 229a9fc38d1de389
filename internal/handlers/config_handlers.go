package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/cardfolio/internal/models"
)

// GetConfig is the handler for GET /api/config. The config table holds a
// single row with id = 1, seeded before the service starts.
func (h *Handlers) GetConfig(c *gin.Context) {
	var cfg models.SystemConfig
	err := h.DB.QueryRow(
		`SELECT id, system_name, low_stock_threshold, logo_url, theme_color FROM config WHERE id = 1`,
	).Scan(&cfg.ID, &cfg.SystemName, &cfg.LowStockThreshold, &cfg.LogoURL, &cfg.ThemeColor)
	if errors.Is(err, sql.ErrNoRows) {
		// The singleton row is an external precondition; its absence is a
		// deployment fault, reported like any other storage failure.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "config row missing"})
		return
	}
	if err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UpdateConfig is the handler for POST /api/config.
func (h *Handlers) UpdateConfig(c *gin.Context) {
	var input models.UpdateConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.DB.Exec(
		`UPDATE config SET system_name = ?, low_stock_threshold = ?, logo_url = ?, theme_color = ? WHERE id = 1`,
		input.SystemName, input.LowStockThreshold, input.LogoURL, input.ThemeColor,
	); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
