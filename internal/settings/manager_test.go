package settings

import (
	"testing"

	"github.com/recruitai/backend/internal/models"
	"github.com/recruitai/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerDefaults(t *testing.T) {
	m := NewManager(testutil.NewMockKV(), testutil.SilentLogger())
	assert.Equal(t, models.DefaultSettings(), m.Get())
}

func TestManagerUpdateAndReload(t *testing.T) {
	kv := testutil.NewMockKV()
	m := NewManager(kv, testutil.SilentLogger())

	want := models.Settings{
		Theme:     models.ThemeDark,
		Language:  models.LanguageEnglish,
		Mode:      models.ModeBalanced,
		BlindMode: true,
	}
	require.NoError(t, m.Update(want))
	assert.Equal(t, want, m.Get())

	reloaded := NewManager(kv, testutil.SilentLogger())
	assert.Equal(t, want, reloaded.Get())
}

func TestManagerRejectsInvalid(t *testing.T) {
	m := NewManager(testutil.NewMockKV(), testutil.SilentLogger())

	bad := models.DefaultSettings()
	bad.Mode = "ruthless"
	err := m.Update(bad)
	require.Error(t, err)
	assert.Equal(t, models.DefaultSettings(), m.Get())
}

func TestManagerCorruptStoredValue(t *testing.T) {
	kv := testutil.NewMockKV()
	require.NoError(t, kv.Put("recruitai_settings", []byte("{nope")))

	m := NewManager(kv, testutil.SilentLogger())
	assert.Equal(t, models.DefaultSettings(), m.Get())
}

func TestManagerQuotaFailureKeepsInMemoryValue(t *testing.T) {
	kv := testutil.NewMockKV()
	m := NewManager(kv, testutil.SilentLogger())

	kv.FailNextPut = true
	want := models.DefaultSettings()
	want.Theme = models.ThemeDark
	require.NoError(t, m.Update(want))
	assert.Equal(t, want, m.Get())
}
