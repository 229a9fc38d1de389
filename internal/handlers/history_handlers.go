package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/cardfolio/internal/ident"
	"github.com/cardfolio/cardfolio/internal/models"
)

// GetHistory is the handler for GET /api/history, newest entries first.
func (h *Handlers) GetHistory(c *gin.Context) {
	query := `
		SELECT id, user_email, user_role, action, details, timestamp
		FROM history
		ORDER BY timestamp DESC`

	rows, err := h.DB.Query(query)
	if err != nil {
		h.storageError(c, err)
		return
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var entry models.HistoryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserEmail,
			&entry.UserRole,
			&entry.Action,
			&entry.Details,
			&entry.Timestamp,
		); err != nil {
			h.storageError(c, err)
			return
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CreateHistoryEntry is the handler for POST /api/history. The timestamp
// column defaults to the insert time on the store side.
func (h *Handlers) CreateHistoryEntry(c *gin.Context) {
	var input models.CreateHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := ident.New()
	if _, err := h.DB.Exec(
		`INSERT INTO history (id, user_email, user_role, action, details) VALUES (?, ?, ?, ?, ?)`,
		id, input.UserEmail, input.UserRole, input.Action, input.Details,
	); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
