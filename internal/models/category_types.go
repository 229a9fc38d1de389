package models

// Category defines the struct for the 'categories' table.
type Category struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CreateCategoryInput defines the JSON input for creating a category.
type CreateCategoryInput struct {
	Name string `json:"name"`
}
