// Package analyzer defines the external candidate analyzer and its
// Gemini-backed implementation. The analyzer applies the selected
// scoring policy itself; callers only forward the selection.
package analyzer

import (
	"context"

	"github.com/recruitai/backend/internal/models"
)

// Document is one binary attachment forwarded to the analyzer.
type Document struct {
	Name     string
	MimeType string
	Data     []byte
}

// Request carries everything the analyzer needs for one candidate. The
// job description is either text or a document; exactly one is set.
type Request struct {
	Document           Document
	JobDescriptionText string
	JobDescriptionDoc  *Document
	Language           models.Language
	Mode               models.AnalysisMode
}

// Client analyzes one candidate document against a job description.
type Client interface {
	Analyze(ctx context.Context, req Request) (*models.AnalysisResult, error)
}
