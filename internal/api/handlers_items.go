// handlers_items.go - Batch item collection handlers
package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/recruitai/backend/internal/batch"
	"github.com/recruitai/backend/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// ItemHandlerImpl implements the ItemHandler interface
type ItemHandlerImpl struct {
	batch       BatchManager
	maxFileSize int64
}

// NewItemHandler creates a new item handler instance
func NewItemHandler(b BatchManager, maxFileSize int64) ItemHandler {
	return &ItemHandlerImpl{batch: b, maxFileSize: maxFileSize}
}

// HandleListItems returns the item collection in intake order
func (h *ItemHandlerImpl) HandleListItems(c echo.Context) error {
	return c.JSON(http.StatusOK, h.batch.Items())
}

// HandleIntakeItems accepts one or more candidate documents as
// multipart files and creates an idle item per file
func (h *ItemHandlerImpl) HandleIntakeItems(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return NewBadRequestError("multipart form required", err)
	}

	files := form.File["files"]
	if len(files) == 0 {
		return NewValidationError("files")
	}

	created := make([]*models.BatchItem, 0, len(files))
	for _, fh := range files {
		data, err := h.readFile(fh)
		if err != nil {
			return err
		}
		created = append(created, h.batch.Add(fh.Filename, fh.Header.Get("Content-Type"), data))
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *ItemHandlerImpl) readFile(fh *multipart.FileHeader) ([]byte, error) {
	if h.maxFileSize > 0 && fh.Size > h.maxFileSize {
		return nil, NewBadRequestError(
			fmt.Sprintf("file %s exceeds the %d byte limit", fh.Filename, h.maxFileSize), nil)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, NewInternalError("failed to read uploaded file", err)
	}
	return data, nil
}

// HandleDeleteItem removes one item by ID
func (h *ItemHandlerImpl) HandleDeleteItem(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	if err := h.batch.Delete(id); err != nil {
		if errors.Is(err, batch.ErrItemNotFound) {
			return NewNotFoundError("item", id)
		}
		return NewInternalError("failed to delete item", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleClearItems drops the whole collection
func (h *ItemHandlerImpl) HandleClearItems(c echo.Context) error {
	if err := h.batch.Clear(); err != nil {
		return NewInternalError("failed to clear items", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleExportItemsMsgpack returns the collection in MessagePack format
func (h *ItemHandlerImpl) HandleExportItemsMsgpack(c echo.Context) error {
	data, err := msgpack.Marshal(h.batch.Items())
	if err != nil {
		return NewInternalError("failed to encode items", err)
	}
	return c.Blob(http.StatusOK, "application/x-msgpack", data)
}
