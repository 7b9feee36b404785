// routes.go - Route registration helpers
// This file provides a clean way to register all API routes
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/recruitai/backend/internal/history"
	"github.com/recruitai/backend/internal/settings"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Batch       BatchManager
	JobHistory  *history.JobDescriptions
	DocHistory  *history.Documents
	Settings    *settings.Manager
	MaxFileSize int64
	Version     string
}

// Handlers holds all handler instances
type Handlers struct {
	Health   HealthHandler
	Items    ItemHandler
	Batch    BatchHandler
	History  HistoryHandler
	Settings SettingsHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(deps.Version),
		Items:    NewItemHandler(deps.Batch, deps.MaxFileSize),
		Batch:    NewBatchHandler(deps.Batch),
		History:  NewHistoryHandler(deps.JobHistory, deps.DocHistory, deps.Batch),
		Settings: NewSettingsHandler(deps.Settings),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	apiGroup := e.Group("/api")

	// Health check
	apiGroup.GET("/health", handlers.Health.HandleHealth)

	// Item collection
	apiGroup.GET("/items", handlers.Items.HandleListItems)
	apiGroup.POST("/items", handlers.Items.HandleIntakeItems)
	apiGroup.DELETE("/items", handlers.Items.HandleClearItems)
	apiGroup.DELETE("/items/:id", handlers.Items.HandleDeleteItem)
	apiGroup.GET("/items/export/msgpack", handlers.Items.HandleExportItemsMsgpack)

	// Analysis runs
	apiGroup.POST("/batch/submit", handlers.Batch.HandleSubmitBatch)
	apiGroup.GET("/batch/status", handlers.Batch.HandleBatchStatus)

	// History caches
	apiGroup.GET("/history/jobs", handlers.History.HandleListJobDescriptions)
	apiGroup.GET("/history/documents", handlers.History.HandleListDocuments)
	apiGroup.POST("/history/documents/:id/restore", handlers.History.HandleRestoreDocument)

	// Preferences
	apiGroup.GET("/settings", handlers.Settings.HandleGetSettings)
	apiGroup.PUT("/settings", handlers.Settings.HandleUpdateSettings)
}
