// Package history holds the two bounded recall caches: recently used
// job descriptions and recently submitted candidate documents. Both are
// count-bounded, not age-bounded, and survive restarts through the
// record store.
package history

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/recruitai/backend/internal/models"
	"github.com/recruitai/backend/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	jdHistoryKey = "recruitai_jd_history"

	// MaxJobDescriptions bounds the cache by count.
	MaxJobDescriptions = 5

	// MinJobDescriptionLen is the floor below which text is not worth
	// remembering.
	MinJobDescriptionLen = 10

	jdTitleLen = 30
)

// JobDescriptions caches the most recently used job description texts.
type JobDescriptions struct {
	mu      sync.RWMutex
	entries []models.StoredJobDescription
	store   *store.Records[models.StoredJobDescription]
	log     *logrus.Entry
}

// NewJobDescriptions loads the cache from the store. History entries
// never expire by age, only by count.
func NewJobDescriptions(kv store.KV, log *logrus.Entry) *JobDescriptions {
	recs := store.NewRecords[models.StoredJobDescription](kv, jdHistoryKey, log)
	return &JobDescriptions{
		entries: recs.Load(0),
		store:   recs,
		log:     log.WithField("component", "jd-history"),
	}
}

// Record remembers a job description text. Texts below the minimum
// length are ignored. A text identical to an existing entry replaces it
// rather than duplicating it. A persist failure (quota) is non-fatal;
// the in-memory cache keeps the new entry and the write is retried on
// the next Record call.
func (h *JobDescriptions) Record(text string) {
	if len(text) < MinJobDescriptionLen {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	filtered := make([]models.StoredJobDescription, 0, len(h.entries)+1)
	filtered = append(filtered, models.StoredJobDescription{
		ID:        uuid.New().String(),
		Title:     jdTitle(text),
		Content:   text,
		Timestamp: time.Now().UnixMilli(),
	})
	for _, e := range h.entries {
		if e.Content != text {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) > MaxJobDescriptions {
		filtered = filtered[:MaxJobDescriptions]
	}

	h.entries = filtered
	if err := h.store.Save(h.entries); err != nil {
		h.log.WithError(err).Warn("job description history not persisted")
	}
}

// List returns the cached entries, most recent first.
func (h *JobDescriptions) List() []models.StoredJobDescription {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.StoredJobDescription, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear drops all cached entries, in memory and in the store.
func (h *JobDescriptions) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
	return h.store.Clear()
}

// jdTitle derives the display title: the first line, truncated to 30
// runes, ellipsis-suffixed. Truncation counts runes, not bytes, so
// accented text never yields invalid UTF-8.
func jdTitle(text string) string {
	first := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		first = text[:i]
	}
	if runes := []rune(first); len(runes) > jdTitleLen {
		first = string(runes[:jdTitleLen])
	}
	return first + "..."
}
