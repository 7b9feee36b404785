// Package settings persists user preferences (theme, language,
// analysis mode) across restarts.
package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/recruitai/backend/internal/models"
	"github.com/recruitai/backend/internal/store"
	"github.com/sirupsen/logrus"
)

const settingsKey = "recruitai_settings"

// Manager holds the current preferences. Reads return a snapshot;
// updates are validated, applied whole, and persisted.
type Manager struct {
	mu       sync.RWMutex
	current  models.Settings
	kv       store.KV
	validate *validator.Validate
	log      *logrus.Entry
}

// NewManager loads persisted preferences. A missing or unparseable
// value falls back to the defaults.
func NewManager(kv store.KV, log *logrus.Entry) *Manager {
	m := &Manager{
		current:  models.DefaultSettings(),
		kv:       kv,
		validate: validator.New(),
		log:      log.WithField("component", "settings"),
	}

	raw, err := kv.Get(settingsKey)
	if err != nil {
		if err != store.ErrNotFound {
			m.log.WithError(err).Warn("settings load failed, using defaults")
		}
		return m
	}

	var s models.Settings
	if err := json.Unmarshal(raw, &s); err != nil || m.validate.Struct(&s) != nil {
		m.log.Warn("stored settings invalid, using defaults")
		return m
	}
	m.current = s
	return m
}

// Get returns the current preferences.
func (m *Manager) Get() models.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update validates and applies a full replacement, then persists it.
// A quota failure keeps the new value in memory.
func (m *Manager) Update(s models.Settings) error {
	if err := m.validate.Struct(&s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = s

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := m.kv.Put(settingsKey, raw); err != nil {
		m.log.WithError(err).Warn("settings not persisted")
	}
	return nil
}
