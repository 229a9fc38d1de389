package models

import "time"

// InventoryItem is the model for the 'inventory' table. Every column except
// the id is nullable in the schema, so the fields are pointers and render as
// null in JSON when unset.
//
// unit_cost is derived once at insert (invoice_cost / units) and never
// recomputed afterwards; the receiving fields (supplier, carrier, tracking,
// inbound_type, unit_type_rcv, invoice_cost) are likewise write-once.
type InventoryItem struct {
	ID           string     `json:"id" db:"id"`
	SKU          *string    `json:"sku" db:"sku"`
	CategoryID   *string    `json:"category_id" db:"category_id"`
	Name         *string    `json:"name" db:"name"`
	Description  *string    `json:"description" db:"description"`
	Price        *float64   `json:"price" db:"price"`
	Units        *int       `json:"units" db:"units"`
	UnitsPerBox  *int       `json:"units_per_box" db:"units_per_box"`
	BoxesPerCase *int       `json:"boxes_per_case" db:"boxes_per_case"`
	Supplier     *string    `json:"supplier" db:"supplier"`
	Carrier      *string    `json:"carrier" db:"carrier"`
	Tracking     *string    `json:"tracking" db:"tracking"`
	InboundType  *string    `json:"inbound_type" db:"inbound_type"`
	UnitTypeRcv  *string    `json:"unit_type_rcv" db:"unit_type_rcv"`
	InvoiceCost  *float64   `json:"invoice_cost" db:"invoice_cost"`
	UnitCost     *float64   `json:"unit_cost" db:"unit_cost"`
	LastMod      *time.Time `json:"last_mod" db:"last_mod"`
}

// InventoryItemInput defines the JSON input for the inventory upsert
// endpoint. An id present means update, absent means insert.
type InventoryItemInput struct {
	ID           string   `json:"id"`
	SKU          *string  `json:"sku"`
	CatID        *string  `json:"catId"`
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Units        *int     `json:"units"`
	UnitsPerBox  *int     `json:"unitsPerBox"`
	BoxesPerCase *int     `json:"boxesPerCase"`
	Supplier     *string  `json:"supplier"`
	Carrier      *string  `json:"carrier"`
	Tracking     *string  `json:"tracking"`
	InboundType  *string  `json:"inboundType"`
	UnitTypeRcv  *string  `json:"unitTypeRcv"`
	InvoiceCost  *float64 `json:"invoiceCost"`
}

// UpdateStockInput defines the JSON input for the stock-only update.
type UpdateStockInput struct {
	ID    string `json:"id"`
	Units *int   `json:"units"`
}
