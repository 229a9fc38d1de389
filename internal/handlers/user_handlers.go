package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/cardfolio/internal/ident"
	"github.com/cardfolio/cardfolio/internal/models"
)

// GetUsers is the handler for GET /api/users. The password column is not
// part of the select list.
func (h *Handlers) GetUsers(c *gin.Context) {
	rows, err := h.DB.Query(`SELECT id, email, role, created_at FROM users`)
	if err != nil {
		h.storageError(c, err)
		return
	}
	defer rows.Close()

	users := []models.UserSummary{}
	for rows.Next() {
		var user models.UserSummary
		if err := rows.Scan(&user.ID, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			h.storageError(c, err)
			return
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser is the handler for POST /api/users.
func (h *Handlers) CreateUser(c *gin.Context) {
	var input models.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := ident.New()
	if _, err := h.DB.Exec(
		`INSERT INTO users (id, email, password, role) VALUES (?, ?, ?, ?)`,
		id, input.Email, input.Password, input.Role,
	); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteUser is the handler for DELETE /api/users/:id.
func (h *Handlers) DeleteUser(c *gin.Context) {
	if _, err := h.DB.Exec(`DELETE FROM users WHERE id = ?`, c.Param("id")); err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
