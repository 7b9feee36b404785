// handlers_batch.go - Analysis run handlers
package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/recruitai/backend/internal/analyzer"
	"github.com/recruitai/backend/internal/batch"
	"github.com/recruitai/backend/internal/models"
)

// BatchHandlerImpl implements the BatchHandler interface
type BatchHandlerImpl struct {
	batch BatchManager
}

// NewBatchHandler creates a new batch handler instance
func NewBatchHandler(b BatchManager) BatchHandler {
	return &BatchHandlerImpl{batch: b}
}

// HandleSubmitBatch starts a sequential analysis run over the idle
// items. The job description arrives as a text field or an uploaded
// document; language and mode are form fields.
func (h *BatchHandlerImpl) HandleSubmitBatch(c echo.Context) error {
	sub := batch.Submission{
		JobDescriptionText: c.FormValue("jobDescription"),
		Language:           models.Language(c.FormValue("language")),
		Mode:               models.AnalysisMode(c.FormValue("mode")),
	}
	if sub.Language == "" {
		sub.Language = models.LanguageFrench
	}
	if sub.Mode == "" {
		sub.Mode = models.ModeStrict
	}
	if !sub.Language.Valid() {
		return NewValidationError("language")
	}
	if !sub.Mode.Valid() {
		return NewValidationError("mode")
	}

	if fh, err := c.FormFile("jobDescriptionFile"); err == nil {
		src, err := fh.Open()
		if err != nil {
			return NewInternalError("failed to open job description file", err)
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return NewInternalError("failed to read job description file", err)
		}
		sub.JobDescriptionDoc = &analyzer.Document{
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		}
	}

	if err := h.batch.Submit(sub); err != nil {
		switch {
		case errors.Is(err, batch.ErrNoJobDescription):
			return NewBadRequestError("job description required", nil)
		case errors.Is(err, batch.ErrNoIdleItems):
			return NewBadRequestError("no idle items to analyze", nil)
		case errors.Is(err, batch.ErrBatchRunning):
			return NewConflictError("an analysis run is already in progress")
		default:
			return NewInternalError("failed to start analysis", err)
		}
	}

	return c.JSON(http.StatusAccepted, h.batch.Status())
}

// HandleBatchStatus reports the current run progress
func (h *BatchHandlerImpl) HandleBatchStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.batch.Status())
}
