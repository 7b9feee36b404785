package history

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/recruitai/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentsRecordAndRestore(t *testing.T) {
	h := NewDocuments(testutil.NewMockKV(), testutil.SilentLogger())

	payload := []byte("%PDF-1.4 fake resume bytes")
	h.Record("alice.pdf", "application/pdf", payload)

	entries := h.List()
	require.Len(t, entries, 1)

	name, mime, data, err := h.Restore(entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "alice.pdf", name)
	assert.Equal(t, "application/pdf", mime)
	assert.Equal(t, payload, data)

	// Each restoration is an independent copy.
	data[0] = 'X'
	_, _, again, err := h.Restore(entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, payload[1:], again[1:])
	assert.EqualValues(t, '%', again[0])
}

func TestDocumentsRestoreUnknownID(t *testing.T) {
	h := NewDocuments(testutil.NewMockKV(), testutil.SilentLogger())

	_, _, _, err := h.Restore("nope")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentsIgnoresOversized(t *testing.T) {
	h := NewDocuments(testutil.NewMockKV(), testutil.SilentLogger())

	h.Record("huge.pdf", "application/pdf", bytes.Repeat([]byte{0xAB}, MaxDocumentBytes+1))
	assert.Empty(t, h.List())
}

func TestDocumentsDedupByFileName(t *testing.T) {
	h := NewDocuments(testutil.NewMockKV(), testutil.SilentLogger())

	h.Record("bob.pdf", "application/pdf", []byte("v1"))
	h.Record("carol.pdf", "application/pdf", []byte("other"))
	h.Record("bob.pdf", "application/pdf", []byte("v2"))

	entries := h.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "bob.pdf", entries[0].FileName)

	_, _, data, err := h.Restore(entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestDocumentsCap(t *testing.T) {
	h := NewDocuments(testutil.NewMockKV(), testutil.SilentLogger())

	for i := 0; i < 5; i++ {
		h.Record(fmt.Sprintf("cv-%d.pdf", i), "application/pdf", []byte("x"))
	}

	entries := h.List()
	require.Len(t, entries, MaxDocuments)
	assert.Equal(t, "cv-4.pdf", entries[0].FileName)
	assert.Equal(t, "cv-2.pdf", entries[2].FileName)
}

func TestDocumentsQuotaRollback(t *testing.T) {
	kv := testutil.NewMockKV()
	h := NewDocuments(kv, testutil.SilentLogger())

	h.Record("kept.pdf", "application/pdf", []byte("stays"))
	before := h.List()

	kv.FailNextPut = true
	h.Record("dropped.pdf", "application/pdf", []byte("never lands"))

	// The failed insert is invisible, in memory and in the store.
	assert.Equal(t, before, h.List())
	reloaded := NewDocuments(kv, testutil.SilentLogger())
	require.Len(t, reloaded.List(), 1)
	assert.Equal(t, "kept.pdf", reloaded.List()[0].FileName)
}

func TestDocumentsSurvivesReload(t *testing.T) {
	kv := testutil.NewMockKV()

	h := NewDocuments(kv, testutil.SilentLogger())
	h.Record("dave.pdf", "application/pdf", []byte("payload"))

	reloaded := NewDocuments(kv, testutil.SilentLogger())
	entries := reloaded.List()
	require.Len(t, entries, 1)

	_, mime, data, err := reloaded.Restore(entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mime)
	assert.Equal(t, []byte("payload"), data)
}
