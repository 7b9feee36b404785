package history

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/recruitai/backend/internal/codec"
	"github.com/recruitai/backend/internal/models"
	"github.com/recruitai/backend/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	documentHistoryKey = "recruitai_cv_history"

	// MaxDocuments bounds the cache by count.
	MaxDocuments = 3

	// MaxDocumentBytes is the size ceiling per cached document.
	MaxDocumentBytes = 1 << 20
)

// ErrDocumentNotFound is returned when restoring an absent entry.
var ErrDocumentNotFound = errors.New("history: document not found")

// Documents caches the most recently submitted candidate documents as
// data URIs.
type Documents struct {
	mu      sync.RWMutex
	entries []models.StoredDocument
	store   *store.Records[models.StoredDocument]
	log     *logrus.Entry
}

// NewDocuments loads the cache from the store, without an age filter.
func NewDocuments(kv store.KV, log *logrus.Entry) *Documents {
	recs := store.NewRecords[models.StoredDocument](kv, documentHistoryKey, log)
	return &Documents{
		entries: recs.Load(0),
		store:   recs,
		log:     log.WithField("component", "document-history"),
	}
}

// Record remembers a candidate document. Documents over the size
// ceiling are ignored. An entry with the same fileName is replaced.
// Eviction, insertion and persistence form one atomic step: if the
// store rejects the write (quota), the in-memory cache reverts to its
// exact pre-insertion state and the insert is invisible.
func (h *Documents) Record(fileName, mimeType string, data []byte) {
	if len(data) > MaxDocumentBytes {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	next := make([]models.StoredDocument, 0, len(h.entries)+1)
	next = append(next, models.StoredDocument{
		ID:        uuid.New().String(),
		FileName:  fileName,
		DataURI:   codec.Encode(data, mimeType),
		Timestamp: time.Now().UnixMilli(),
	})
	for _, e := range h.entries {
		if e.FileName != fileName {
			next = append(next, e)
		}
	}
	if len(next) > MaxDocuments {
		next = next[:MaxDocuments]
	}

	if err := h.store.Save(next); err != nil {
		h.log.WithError(err).WithField("file", fileName).
			Warn("document history insert dropped")
		return
	}
	h.entries = next
}

// List returns the cached entries, most recent first.
func (h *Documents) List() []models.StoredDocument {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.StoredDocument, len(h.entries))
	copy(out, h.entries)
	return out
}

// Restore decodes the entry's data URI into a fresh byte slice. Each
// call produces an independent copy, so repeated restorations are safe
// to issue concurrently with further history mutation.
func (h *Documents) Restore(id string) (fileName string, mimeType string, data []byte, err error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, e := range h.entries {
		if e.ID == id {
			data, mimeType, err = codec.Decode(e.DataURI)
			if err != nil {
				return "", "", nil, err
			}
			return e.FileName, mimeType, data, nil
		}
	}
	return "", "", nil, ErrDocumentNotFound
}

// Clear drops all cached entries, in memory and in the store.
func (h *Documents) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
	return h.store.Clear()
}
