package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/cardfolio/internal/ident"
	"github.com/cardfolio/cardfolio/internal/models"
)

// GetCategories is the handler for GET /api/categories.
func (h *Handlers) GetCategories(c *gin.Context) {
	rows, err := h.DB.Query(`SELECT id, name FROM categories`)
	if err != nil {
		h.storageError(c, err)
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			h.storageError(c, err)
			return
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory is the handler for POST /api/categories.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := ident.New()
	if _, err := h.DB.Exec(`INSERT INTO categories (id, name) VALUES (?, ?)`, id, input.Name); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteCategory is the handler for DELETE /api/categories/:id.
// Inventory rows referencing the category keep their category_id; there is
// no cascade or referential check here.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	if _, err := h.DB.Exec(`DELETE FROM categories WHERE id = ?`, c.Param("id")); err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
