// mock_analyzer.go - Scripted analyzer implementation for testing
package testutil

import (
	"context"
	"sync"

	"github.com/recruitai/backend/internal/analyzer"
	"github.com/recruitai/backend/internal/models"
)

// MockAnalyzer implements analyzer.Client with a scriptable AnalyzeFunc
// and records every request it receives, in call order.
type MockAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, req analyzer.Request) (*models.AnalysisResult, error)

	mu       sync.Mutex
	requests []analyzer.Request
}

// NewMockAnalyzer creates a mock that returns OKResult for every call.
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

func (m *MockAnalyzer) Analyze(ctx context.Context, req analyzer.Request) (*models.AnalysisResult, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, req)
	}
	return OKResult(req), nil
}

// Requests returns a snapshot of the received requests in call order.
func (m *MockAnalyzer) Requests() []analyzer.Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]analyzer.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// OKResult builds a schema-valid analysis for the given request.
func OKResult(req analyzer.Request) *models.AnalysisResult {
	return &models.AnalysisResult{
		ID:              "result-" + req.Document.Name,
		CandidateName:   "Candidate " + req.Document.Name,
		Score:           75,
		TechnicalScore:  30,
		ExperienceScore: 25,
		SoftSkillScore:  12,
		FormattingScore: 8,
		Summary:         "Solid profile overall.",
		Recommendation:  models.RecommendMaybe,
		ModeUsed:        req.Mode,
	}
}

var _ analyzer.Client = (*MockAnalyzer)(nil)
