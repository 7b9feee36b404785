package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemStatus represents the lifecycle state of a batch item.
type ItemStatus string

const (
	ItemStatusIdle      ItemStatus = "idle"
	ItemStatusAnalyzing ItemStatus = "analyzing"
	ItemStatusDone      ItemStatus = "done"
	ItemStatusError     ItemStatus = "error"
)

// Terminal reports whether the status admits no further transitions.
func (s ItemStatus) Terminal() bool {
	return s == ItemStatusDone || s == ItemStatusError
}

// BatchItem is one candidate document under analysis. The raw document
// bytes live only in memory; the persisted form carries metadata, status
// and result. An item restored from the store therefore has no Data and
// can never be analyzed again.
type BatchItem struct {
	ID        string          `json:"id" msgpack:"id"`
	FileName  string          `json:"fileName" msgpack:"fileName"`
	MimeType  string          `json:"mimeType,omitempty" msgpack:"mimeType,omitempty"`
	Data      []byte          `json:"-" msgpack:"-"`
	Status    ItemStatus      `json:"status" msgpack:"status"`
	Result    *AnalysisResult `json:"result,omitempty" msgpack:"result,omitempty"`
	Timestamp int64           `json:"timestamp" msgpack:"timestamp"` // intake time, Unix ms
}

// NewBatchItem creates an idle item holding live document bytes.
func NewBatchItem(fileName, mimeType string, data []byte) *BatchItem {
	return &BatchItem{
		ID:        uuid.New().String(),
		FileName:  fileName,
		MimeType:  mimeType,
		Data:      data,
		Status:    ItemStatusIdle,
		Timestamp: time.Now().UnixMilli(),
	}
}

// HasFile reports whether the item still holds its original bytes.
func (i *BatchItem) HasFile() bool {
	return len(i.Data) > 0
}

// Key implements store.Record.
func (i *BatchItem) Key() string { return i.ID }

// UnixMilli implements store.Record.
func (i *BatchItem) UnixMilli() int64 { return i.Timestamp }
