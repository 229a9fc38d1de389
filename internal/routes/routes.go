package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cardfolio/cardfolio/internal/handlers"
	"github.com/cardfolio/cardfolio/internal/middleware"
)

// SetupRouter wires every API route to its handler. Each route maps to a
// single statement against the store; no endpoint past the login pair
// requires authentication.
func SetupRouter(h *handlers.Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if logger != nil {
		router.Use(middleware.RequestLogger(logger))
	}

	api := router.Group("/api")
	{
		// --- Two-step authentication ---
		api.POST("/login", h.Login)
		api.POST("/verify-otp", h.VerifyOTP)

		// --- Inventory ---
		api.GET("/inventory", h.GetInventory)
		api.POST("/inventory", h.SaveInventoryItem)
		api.PUT("/inventory/stock", h.UpdateStock)
		api.DELETE("/inventory/:id", h.DeleteInventoryItem)

		// --- Categories ---
		api.GET("/categories", h.GetCategories)
		api.POST("/categories", h.CreateCategory)
		api.DELETE("/categories/:id", h.DeleteCategory)

		// --- Users ---
		api.GET("/users", h.GetUsers)
		api.POST("/users", h.CreateUser)
		api.DELETE("/users/:id", h.DeleteUser)

		// --- History (append-only) ---
		api.GET("/history", h.GetHistory)
		api.POST("/history", h.CreateHistoryEntry)

		// --- System configuration (singleton) ---
		api.GET("/config", h.GetConfig)
		api.POST("/config", h.UpdateConfig)
	}

	return router
}
