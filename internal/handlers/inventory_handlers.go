package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/cardfolio/internal/ident"
	"github.com/cardfolio/cardfolio/internal/models"
)

// GetInventory is the handler for GET /api/inventory.
// Rows come back ordered by SKU regardless of insertion order.
func (h *Handlers) GetInventory(c *gin.Context) {
	query := `
		SELECT id, sku, category_id, name, description, price, units,
		       units_per_box, boxes_per_case, supplier, carrier, tracking,
		       inbound_type, unit_type_rcv, invoice_cost, unit_cost, last_mod
		FROM inventory
		ORDER BY sku ASC`

	rows, err := h.DB.Query(query)
	if err != nil {
		h.storageError(c, err)
		return
	}
	defer rows.Close()

	// Initialize as empty slice so it renders as [] in JSON instead of null
	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(
			&item.ID,
			&item.SKU,
			&item.CategoryID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Units,
			&item.UnitsPerBox,
			&item.BoxesPerCase,
			&item.Supplier,
			&item.Carrier,
			&item.Tracking,
			&item.InboundType,
			&item.UnitTypeRcv,
			&item.InvoiceCost,
			&item.UnitCost,
			&item.LastMod,
		); err != nil {
			h.storageError(c, err)
			return
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// SaveInventoryItem is the handler for POST /api/inventory. A body carrying
// an id updates the item's basic fields; without one it inserts a new row.
func (h *Handlers) SaveInventoryItem(c *gin.Context) {
	var input models.InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ID != "" {
		// UPDATE: basic fields only. The receiving fields and unit_cost are
		// write-once at creation and stay untouched here.
		query := `
			UPDATE inventory
			SET sku = ?, category_id = ?, name = ?, description = ?, price = ?,
			    units = ?, units_per_box = ?, boxes_per_case = ?, last_mod = NOW()
			WHERE id = ?`

		args := []interface{}{
			input.SKU, input.CatID, input.Name, input.Description, input.Price,
			input.Units, input.UnitsPerBox, input.BoxesPerCase, input.ID,
		}

		if _, err := h.DB.Exec(query, args...); err != nil {
			h.storageError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	// INSERT: include the receiving details and derive the unit cost.
	unitCost := 0.0
	if input.InvoiceCost != nil && input.Units != nil && *input.Units > 0 {
		unitCost = *input.InvoiceCost / float64(*input.Units)
	}

	id := ident.New()

	query := `
		INSERT INTO inventory
			(id, sku, category_id, name, description, price, units,
			 units_per_box, boxes_per_case, supplier, carrier, tracking,
			 inbound_type, unit_type_rcv, invoice_cost, unit_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	args := []interface{}{
		id, input.SKU, input.CatID, input.Name, input.Description, input.Price,
		input.Units, input.UnitsPerBox, input.BoxesPerCase, input.Supplier,
		input.Carrier, input.Tracking, input.InboundType, input.UnitTypeRcv,
		input.InvoiceCost, unitCost,
	}

	if _, err := h.DB.Exec(query, args...); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// DeleteInventoryItem is the handler for DELETE /api/inventory/:id.
// Deleting an id that is already gone still reports success.
func (h *Handlers) DeleteInventoryItem(c *gin.Context) {
	if _, err := h.DB.Exec(`DELETE FROM inventory WHERE id = ?`, c.Param("id")); err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateStock is the handler for PUT /api/inventory/stock. It adjusts the
// unit count only and refreshes last_mod.
func (h *Handlers) UpdateStock(c *gin.Context) {
	var input models.UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.DB.Exec(
		`UPDATE inventory SET units = ?, last_mod = NOW() WHERE id = ?`,
		input.Units, input.ID,
	); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
