// handlers_settings.go - User preference handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/recruitai/backend/internal/models"
	"github.com/recruitai/backend/internal/settings"
)

// SettingsHandlerImpl implements the SettingsHandler interface
type SettingsHandlerImpl struct {
	settings *settings.Manager
}

// NewSettingsHandler creates a new settings handler instance
func NewSettingsHandler(m *settings.Manager) SettingsHandler {
	return &SettingsHandlerImpl{settings: m}
}

// HandleGetSettings returns the current preferences
func (h *SettingsHandlerImpl) HandleGetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settings.Get())
}

// HandleUpdateSettings replaces the preferences whole
func (h *SettingsHandlerImpl) HandleUpdateSettings(c echo.Context) error {
	var s models.Settings
	if err := c.Bind(&s); err != nil {
		return NewBadRequestError("invalid request body", err)
	}

	if err := h.settings.Update(s); err != nil {
		return NewBadRequestError("invalid settings", err)
	}
	return c.JSON(http.StatusOK, h.settings.Get())
}
