// Package batch owns the candidate item collection, its state machine
// and the sequential analysis run. One Manager instance serves the
// whole process.
package batch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/recruitai/backend/internal/analyzer"
	"github.com/recruitai/backend/internal/history"
	"github.com/recruitai/backend/internal/models"
	"github.com/recruitai/backend/internal/store"
	"github.com/sirupsen/logrus"
)

const itemsKey = "recruitai_files"

// RetentionWindow bounds how long persisted items survive restarts.
const RetentionWindow = 7 * 24 * time.Hour

var (
	// ErrNoJobDescription rejects a submission with neither text nor
	// document job description.
	ErrNoJobDescription = errors.New("batch: job description required")

	// ErrNoIdleItems rejects a submission with nothing left to analyze.
	ErrNoIdleItems = errors.New("batch: no idle items")

	// ErrBatchRunning rejects a submission while a run is in flight.
	ErrBatchRunning = errors.New("batch: analysis already running")

	// ErrItemNotFound is returned when deleting an unknown item.
	ErrItemNotFound = errors.New("batch: item not found")
)

// Submission is one analysis request for all idle items. The job
// description is text or a document; text wins when both are set.
type Submission struct {
	JobDescriptionText string
	JobDescriptionDoc  *analyzer.Document
	Language           models.Language
	Mode               models.AnalysisMode
}

// Status is a snapshot of run progress. The item collection itself
// carries per-item outcomes; this only summarizes the in-flight run.
type Status struct {
	Running   bool `json:"running"`
	Processed int  `json:"processed"`
	Total     int  `json:"total"`
}

// Manager holds the item collection and drives analysis runs. Items are
// processed strictly sequentially and the full collection is persisted
// after every terminal transition, so partial progress survives an
// interruption.
type Manager struct {
	mu         sync.RWMutex
	items      []*models.BatchItem
	store      *store.Records[*models.BatchItem]
	analyzer   analyzer.Client
	jdHistory  *history.JobDescriptions
	docHistory *history.Documents

	running   bool
	processed int
	total     int

	log *logrus.Entry
}

// NewManager restores the persisted collection, dropping items older
// than maxAge. Restored items carry no document bytes. An item that was
// persisted mid-analysis by an interrupted run comes back as idle, so
// the next run picks it up and drives it to a terminal state.
func NewManager(kv store.KV, client analyzer.Client, jd *history.JobDescriptions, docs *history.Documents, maxAge time.Duration, log *logrus.Entry) *Manager {
	recs := store.NewRecords[*models.BatchItem](kv, itemsKey, log)
	items := recs.Load(maxAge)
	for _, item := range items {
		if item.Status == models.ItemStatusAnalyzing {
			item.Status = models.ItemStatusIdle
		}
	}
	m := &Manager{
		items:      items,
		store:      recs,
		analyzer:   client,
		jdHistory:  jd,
		docHistory: docs,
		log:        log.WithField("component", "batch"),
	}
	m.log.WithField("items", len(m.items)).Info("batch collection restored")
	return m
}

// Items returns the collection in intake order, as value copies taken
// under the lock. Callers may serialize them while a run is mutating
// item statuses. Result values are immutable once attached.
func (m *Manager) Items() []models.BatchItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.BatchItem, len(m.items))
	for i, item := range m.items {
		out[i] = *item
	}
	return out
}

// Add creates an idle item from live document bytes and persists the
// collection. A persist failure keeps the item in memory; it just will
// not survive a restart until a later write succeeds.
func (m *Manager) Add(fileName, mimeType string, data []byte) *models.BatchItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := models.NewBatchItem(fileName, mimeType, data)
	m.items = append(m.items, item)
	m.persistLocked()
	return item
}

// Delete removes one item by ID.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persistLocked()
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear drops the whole collection, in memory and in the store.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	return m.store.Clear()
}

// Status reports the current run progress.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Status{Running: m.running, Processed: m.processed, Total: m.total}
}

// Submit validates preconditions, records histories, and starts the
// sequential run in the background. Progress is observed via Status and
// the item collection, not a return value.
func (m *Manager) Submit(sub Submission) error {
	if err := m.begin(sub); err != nil {
		return err
	}
	go m.run(context.Background(), sub)
	return nil
}

// begin checks preconditions and records the job description and every
// idle item's document into the history caches before processing
// starts, so an interrupted run still preserves what was about to be
// analyzed.
func (m *Manager) begin(sub Submission) error {
	if sub.JobDescriptionText == "" && sub.JobDescriptionDoc == nil {
		return ErrNoJobDescription
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return ErrBatchRunning
	}

	eligible := 0
	for _, item := range m.items {
		if item.Status == models.ItemStatusIdle {
			eligible++
		}
	}
	if eligible == 0 {
		return ErrNoIdleItems
	}

	if sub.JobDescriptionText != "" {
		m.jdHistory.Record(sub.JobDescriptionText)
	}
	for _, item := range m.items {
		if item.Status == models.ItemStatusIdle && item.HasFile() {
			m.docHistory.Record(item.FileName, item.MimeType, item.Data)
		}
	}

	m.running = true
	m.processed = 0
	m.total = eligible
	return nil
}

// run processes idle items one at a time, in collection order. Each
// item reaches a terminal state and is persisted before the next item
// starts; an analyzer failure marks that item only and the run goes on.
func (m *Manager) run(ctx context.Context, sub Submission) {
	defer func() {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
	}()

	for {
		item := m.nextIdle()
		if item == nil {
			return
		}

		log := m.log.WithFields(logrus.Fields{"item": item.ID, "file": item.FileName})

		if !item.HasFile() {
			log.Warn("item has no document bytes, marking error")
			m.finish(item, nil)
			continue
		}

		m.setStatus(item, models.ItemStatusAnalyzing)

		result, err := m.analyzer.Analyze(ctx, analyzer.Request{
			Document: analyzer.Document{
				Name:     item.FileName,
				MimeType: item.MimeType,
				Data:     item.Data,
			},
			JobDescriptionText: sub.JobDescriptionText,
			JobDescriptionDoc:  sub.JobDescriptionDoc,
			Language:           sub.Language,
			Mode:               sub.Mode,
		})
		if err != nil {
			log.WithError(err).Warn("analysis failed")
			m.finish(item, nil)
			continue
		}

		log.WithField("score", result.Score).Info("analysis complete")
		m.finish(item, result)
	}
}

// nextIdle returns the first idle item in collection order, or nil.
func (m *Manager) nextIdle() *models.BatchItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, item := range m.items {
		if item.Status == models.ItemStatusIdle {
			return item
		}
	}
	return nil
}

func (m *Manager) setStatus(item *models.BatchItem, status models.ItemStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item.Status = status
	m.persistLocked()
}

// finish moves the item to its terminal state and persists the full
// collection. A nil result means error.
func (m *Manager) finish(item *models.BatchItem, result *models.AnalysisResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if result != nil {
		item.Status = models.ItemStatusDone
		item.Result = result
	} else {
		item.Status = models.ItemStatusError
	}
	m.processed++
	m.persistLocked()
}

func (m *Manager) persistLocked() {
	if err := m.store.Save(m.items); err != nil {
		m.log.WithError(err).Warn("item collection not persisted")
	}
}
