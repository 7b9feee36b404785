package store

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// Record is any persistable record with a stable identifier and an
// epoch-millisecond timestamp used for expiration and recency ordering.
type Record interface {
	Key() string
	UnixMilli() int64
}

// Records persists one bounded collection of records under a single KV
// key. Each key has a single logical owner; there are no concurrent
// writers to the same key.
type Records[T Record] struct {
	kv  KV
	key string
	log *logrus.Entry
}

// NewRecords creates a record store bound to one backing key.
func NewRecords[T Record](kv KV, key string, log *logrus.Entry) *Records[T] {
	return &Records[T]{kv: kv, key: key, log: log.WithField("key", key)}
}

// Load reads and parses the backing value. Records older than maxAge are
// dropped; maxAge <= 0 disables the age filter. A missing key or a value
// that fails to parse yields an empty collection. Parse failures are
// logged and never propagated.
func (s *Records[T]) Load(maxAge time.Duration) []T {
	raw, err := s.kv.Get(s.key)
	if err != nil {
		if err != ErrNotFound {
			s.log.WithError(err).Warn("record load failed, treating as empty")
		}
		return nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.WithError(err).Warn("record parse failed, treating as empty")
		return nil
	}

	if maxAge <= 0 {
		return records
	}

	now := time.Now().UnixMilli()
	kept := records[:0]
	for _, r := range records {
		if now-r.UnixMilli() < maxAge.Milliseconds() {
			kept = append(kept, r)
		}
	}
	return kept
}

// Save serializes the full collection and replaces the prior value.
// On ErrQuotaExceeded the write is skipped and the stored state is
// unchanged; the error is returned so callers that need insertion
// effects to be visible can roll back, but it is never fatal.
func (s *Records[T]) Save(records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		s.log.WithError(err).Error("record serialization failed")
		return err
	}

	if err := s.kv.Put(s.key, raw); err != nil {
		if err == ErrQuotaExceeded {
			s.log.WithField("records", len(records)).Warn("record save skipped: quota exceeded")
		} else {
			s.log.WithError(err).Error("record save failed")
		}
		return err
	}
	return nil
}

// Clear removes the backing value entirely.
func (s *Records[T]) Clear() error {
	return s.kv.Delete(s.key)
}

// Prune returns at most max records, most recent first. The input is
// not modified.
func Prune[T Record](records []T, max int) []T {
	out := make([]T, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UnixMilli() > out[j].UnixMilli()
	})

	if max >= 0 && len(out) > max {
		out = out[:max]
	}
	return out
}
