package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/recruitai/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAnalysisJSON() string {
	return `{
		"candidateName": "Jane Doe",
		"email": "jane@example.com",
		"score": 82,
		"technicalScore": 34,
		"experienceScore": 25,
		"softSkillScore": 15,
		"formattingScore": 8,
		"summary": "Strong backend profile.",
		"strengths": ["Go", "SQL"],
		"weaknesses": ["No Kubernetes"],
		"recommendation": "HIRE",
		"reasoning": "Meets all core requirements.",
		"education": ["MSc Computer Science"],
		"languages": ["French", "English"],
		"interests": ["Open source"],
		"redFlags": [],
		"hasGaps": false,
		"gapAnalysis": "No gaps detected.",
		"matchingSkills": ["Go"],
		"missingSkills": ["Kubernetes"],
		"interviewQuestions": {"technical": ["Q1", "Q2", "Q3"], "behavioral": ["B1"]},
		"emailDrafts": {"reject": "r", "waitlist": "w", "invite": "i"}
	}`
}

func geminiStub(t *testing.T, text string, capture *geminiRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": text}},
				},
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func testRequest() Request {
	return Request{
		Document: Document{
			Name:     "jane.pdf",
			MimeType: "application/pdf",
			Data:     []byte("%PDF fake"),
		},
		JobDescriptionText: "Senior Go engineer, remote",
		Language:           models.LanguageEnglish,
		Mode:               models.ModeBalanced,
	}
}

func TestGeminiAnalyze(t *testing.T) {
	var captured geminiRequest
	srv := geminiStub(t, validAnalysisJSON(), &captured)
	defer srv.Close()

	c := NewGeminiClient("test-key", WithBaseURL(srv.URL))
	result, err := c.Analyze(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", result.CandidateName)
	assert.Equal(t, 82, result.Score)
	assert.Equal(t, models.RecommendHire, result.Recommendation)
	assert.NotEmpty(t, result.ID)
	assert.NotEmpty(t, result.Date)
	assert.Equal(t, models.ModeBalanced, result.ModeUsed)

	// Deterministic generation config goes out with every call.
	cfg := captured.GenerationConfig
	assert.Zero(t, cfg.Temperature)
	assert.Equal(t, 1, cfg.TopK)
	assert.Equal(t, 42, cfg.Seed)
	assert.Equal(t, "application/json", cfg.ResponseMimeType)
	assert.NotEmpty(t, cfg.ResponseSchema)

	// CV inline data plus one text part carrying the prompt.
	require.Len(t, captured.Contents, 1)
	parts := captured.Contents[0].Parts
	require.Len(t, parts, 2)
	assert.Equal(t, "application/pdf", parts[0].InlineData.MimeType)
	assert.Contains(t, parts[1].Text, "JOB DESCRIPTION")
	assert.Contains(t, parts[1].Text, "BALANCED & REALISTIC")
	assert.Contains(t, parts[1].Text, "RESPOND ONLY IN ENGLISH.")
}

func TestGeminiAnalyzeJobDescriptionDocument(t *testing.T) {
	var captured geminiRequest
	srv := geminiStub(t, validAnalysisJSON(), &captured)
	defer srv.Close()

	req := testRequest()
	req.JobDescriptionText = ""
	req.JobDescriptionDoc = &Document{Name: "jd.pdf", MimeType: "application/pdf", Data: []byte("jd")}
	req.Language = models.LanguageFrench
	req.Mode = models.ModeStrict

	c := NewGeminiClient("test-key", WithBaseURL(srv.URL))
	_, err := c.Analyze(context.Background(), req)
	require.NoError(t, err)

	parts := captured.Contents[0].Parts
	require.Len(t, parts, 3)
	assert.NotNil(t, parts[0].InlineData)
	assert.NotNil(t, parts[1].InlineData)
	assert.Contains(t, parts[2].Text, "Document 1 is the CV. Document 2 is the Job Description.")
	assert.Contains(t, parts[2].Text, "STRICT & UNCOMPROMISING")
	assert.Contains(t, parts[2].Text, "FRANÇAIS")
}

func TestGeminiAnalyzeRejectsOutOfRangeScores(t *testing.T) {
	bad := `{"candidateName":"X","score":250,"technicalScore":34,"experienceScore":25,` +
		`"softSkillScore":15,"formattingScore":8,"summary":"s","strengths":[],"weaknesses":[],` +
		`"recommendation":"HIRE","reasoning":"r","education":[],"languages":[],"interests":[],` +
		`"redFlags":[],"hasGaps":false,"gapAnalysis":"g","matchingSkills":[],"missingSkills":[],` +
		`"interviewQuestions":{"technical":[],"behavioral":[]},"emailDrafts":{"reject":"","waitlist":"","invite":""}}`

	srv := geminiStub(t, bad, nil)
	defer srv.Close()

	c := NewGeminiClient("test-key", WithBaseURL(srv.URL))
	_, err := c.Analyze(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestGeminiAnalyzeMalformedJSON(t *testing.T) {
	srv := geminiStub(t, "{broken", nil)
	defer srv.Close()

	c := NewGeminiClient("test-key", WithBaseURL(srv.URL))
	_, err := c.Analyze(context.Background(), testRequest())
	assert.Error(t, err)
}

func TestGeminiAnalyzeAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("test-key", WithBaseURL(srv.URL))
	_, err := c.Analyze(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGeminiAnalyzeEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("test-key", WithBaseURL(srv.URL))
	_, err := c.Analyze(context.Background(), testRequest())
	assert.Error(t, err)
}
