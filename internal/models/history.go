package models

// StoredJobDescription is a cached job description text. Uniqueness is
// by exact Content within the cache.
type StoredJobDescription struct {
	ID        string `json:"id"`
	Title     string `json:"title"` // first line of content, truncated
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // Unix ms
}

// Key implements store.Record.
func (d StoredJobDescription) Key() string { return d.ID }

// UnixMilli implements store.Record.
func (d StoredJobDescription) UnixMilli() int64 { return d.Timestamp }

// StoredDocument is a cached candidate document, held as a data URI so
// the binary survives the text-valued store. Uniqueness is by FileName.
type StoredDocument struct {
	ID        string `json:"id"`
	FileName  string `json:"fileName"`
	DataURI   string `json:"dataUri"`
	Timestamp int64  `json:"timestamp"` // Unix ms
}

// Key implements store.Record.
func (d StoredDocument) Key() string { return d.ID }

// UnixMilli implements store.Record.
func (d StoredDocument) UnixMilli() int64 { return d.Timestamp }
