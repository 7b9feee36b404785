// handlers_history.go - History cache handlers
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/recruitai/backend/internal/history"
	"github.com/recruitai/backend/internal/models"
)

// HistoryHandlerImpl implements the HistoryHandler interface
type HistoryHandlerImpl struct {
	jobs  *history.JobDescriptions
	docs  *history.Documents
	batch BatchManager
}

// NewHistoryHandler creates a new history handler instance
func NewHistoryHandler(jobs *history.JobDescriptions, docs *history.Documents, b BatchManager) HistoryHandler {
	return &HistoryHandlerImpl{jobs: jobs, docs: docs, batch: b}
}

// HandleListJobDescriptions returns the cached job descriptions,
// most recent first
func (h *HistoryHandlerImpl) HandleListJobDescriptions(c echo.Context) error {
	entries := h.jobs.List()
	if entries == nil {
		entries = []models.StoredJobDescription{}
	}
	return c.JSON(http.StatusOK, entries)
}

// documentSummary is a cached document without its payload. The data
// URI stays server-side; consumers restore by ID.
type documentSummary struct {
	ID        string `json:"id"`
	FileName  string `json:"fileName"`
	Timestamp int64  `json:"timestamp"`
}

// HandleListDocuments returns the cached document entries, most recent
// first, without payloads
func (h *HistoryHandlerImpl) HandleListDocuments(c echo.Context) error {
	entries := h.docs.List()
	out := make([]documentSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, documentSummary{ID: e.ID, FileName: e.FileName, Timestamp: e.Timestamp})
	}
	return c.JSON(http.StatusOK, out)
}

// HandleRestoreDocument decodes a cached document into a fresh idle
// item. Every restoration produces an independent copy of the bytes.
func (h *HistoryHandlerImpl) HandleRestoreDocument(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	fileName, mimeType, data, err := h.docs.Restore(id)
	if err != nil {
		if errors.Is(err, history.ErrDocumentNotFound) {
			return NewNotFoundError("document", id)
		}
		return NewInternalError("stored document could not be decoded", err)
	}

	item := h.batch.Add(fileName, mimeType, data)
	return c.JSON(http.StatusCreated, item)
}
