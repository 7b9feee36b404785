// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/recruitai/backend/internal/batch"
	"github.com/recruitai/backend/internal/models"
)

// ItemHandler handles batch item collection operations
type ItemHandler interface {
	HandleListItems(c echo.Context) error
	HandleIntakeItems(c echo.Context) error
	HandleDeleteItem(c echo.Context) error
	HandleClearItems(c echo.Context) error
	HandleExportItemsMsgpack(c echo.Context) error
}

// BatchHandler handles analysis run operations
type BatchHandler interface {
	HandleSubmitBatch(c echo.Context) error
	HandleBatchStatus(c echo.Context) error
}

// HistoryHandler handles history cache operations
type HistoryHandler interface {
	HandleListJobDescriptions(c echo.Context) error
	HandleListDocuments(c echo.Context) error
	HandleRestoreDocument(c echo.Context) error
}

// SettingsHandler handles user preference operations
type SettingsHandler interface {
	HandleGetSettings(c echo.Context) error
	HandleUpdateSettings(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// BatchManager defines the batch operations the handlers need.
// This allows mocking in tests
type BatchManager interface {
	Items() []models.BatchItem
	Add(fileName, mimeType string, data []byte) *models.BatchItem
	Delete(id string) error
	Clear() error
	Status() batch.Status
	Submit(sub batch.Submission) error
}
