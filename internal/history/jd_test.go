package history

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/recruitai/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDescriptionsRecord(t *testing.T) {
	kv := testutil.NewMockKV()
	h := NewJobDescriptions(kv, testutil.SilentLogger())

	h.Record("Senior Go engineer, Paris office, hybrid")
	entries := h.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Go engineer, Paris offi...", entries[0].Title)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotZero(t, entries[0].Timestamp)
}

func TestJobDescriptionsIgnoresShortText(t *testing.T) {
	h := NewJobDescriptions(testutil.NewMockKV(), testutil.SilentLogger())

	h.Record("too short")
	assert.Empty(t, h.List())
}

func TestJobDescriptionsTitleFromFirstLine(t *testing.T) {
	h := NewJobDescriptions(testutil.NewMockKV(), testutil.SilentLogger())

	h.Record("Data analyst\nRemote, full time, start ASAP")
	entries := h.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Data analyst...", entries[0].Title)
}

func TestJobDescriptionsTitleTruncatesByRunes(t *testing.T) {
	h := NewJobDescriptions(testutil.NewMockKV(), testutil.SilentLogger())

	// 35 accented runes: a byte-wise cut would land inside a rune.
	h.Record(strings.Repeat("é", 35))
	entries := h.List()
	require.Len(t, entries, 1)
	assert.Equal(t, strings.Repeat("é", 30)+"...", entries[0].Title)
	assert.True(t, utf8.ValidString(entries[0].Title))
}

func TestJobDescriptionsDedupByContent(t *testing.T) {
	h := NewJobDescriptions(testutil.NewMockKV(), testutil.SilentLogger())

	text := "Backend developer with DuckDB experience"
	h.Record(text)
	first := h.List()[0]

	h.Record(text)
	entries := h.List()
	require.Len(t, entries, 1)
	assert.NotEqual(t, first.ID, entries[0].ID)
}

func TestJobDescriptionsCap(t *testing.T) {
	h := NewJobDescriptions(testutil.NewMockKV(), testutil.SilentLogger())

	for i := 0; i < 6; i++ {
		h.Record(fmt.Sprintf("Job description number %d with enough text", i))
	}

	entries := h.List()
	require.Len(t, entries, MaxJobDescriptions)
	// Most recent first, oldest insert evicted.
	assert.True(t, strings.Contains(entries[0].Content, "number 5"))
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Content, "number 0"))
	}
}

func TestJobDescriptionsSurvivesReload(t *testing.T) {
	kv := testutil.NewMockKV()

	h := NewJobDescriptions(kv, testutil.SilentLogger())
	h.Record("Machine learning engineer, computer vision")

	reloaded := NewJobDescriptions(kv, testutil.SilentLogger())
	entries := reloaded.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Machine learning engineer, com...", entries[0].Title)
}

func TestJobDescriptionsClear(t *testing.T) {
	kv := testutil.NewMockKV()
	h := NewJobDescriptions(kv, testutil.SilentLogger())

	h.Record("Fullstack developer, React and Go")
	require.NoError(t, h.Clear())
	assert.Empty(t, h.List())
	assert.Empty(t, NewJobDescriptions(kv, testutil.SilentLogger()).List())
}
