package models

// SystemConfig is the model for the 'config' table, a singleton row with
// id = 1. The row is expected to exist before the service starts; it is
// only ever read or updated.
type SystemConfig struct {
	ID                int     `json:"id" db:"id"`
	SystemName        *string `json:"system_name" db:"system_name"`
	LowStockThreshold *int    `json:"low_stock_threshold" db:"low_stock_threshold"`
	LogoURL           *string `json:"logo_url" db:"logo_url"`
	ThemeColor        *string `json:"theme_color" db:"theme_color"`
}

// UpdateConfigInput defines the JSON input for updating the singleton
// config row.
type UpdateConfigInput struct {
	SystemName        string `json:"systemName"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	LogoURL           string `json:"logoUrl"`
	ThemeColor        string `json:"themeColor"`
}
