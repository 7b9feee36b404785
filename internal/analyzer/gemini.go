package analyzer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/recruitai/backend/internal/models"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultMime          = "application/pdf"
)

// GeminiClient talks to the Gemini generateContent REST endpoint and
// validates the structured response against the result schema.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	now        func() time.Time
}

// GeminiOption customizes a GeminiClient.
type GeminiOption func(*GeminiClient)

// WithModel overrides the default model.
func WithModel(model string) GeminiOption {
	return func(c *GeminiClient) { c.model = model }
}

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(url string) GeminiOption {
	return func(c *GeminiClient) { c.baseURL = url }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) GeminiOption {
	return func(c *GeminiClient) { c.httpClient = hc }
}

// NewGeminiClient creates a Gemini-backed analyzer.
func NewGeminiClient(apiKey string, opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{
		apiKey:     apiKey,
		model:      defaultGeminiModel,
		baseURL:    defaultGeminiBaseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		validate:   validator.New(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
	Text       string            `json:"text,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64        `json:"temperature"`
	TopP             float64        `json:"topP"`
	TopK             int            `json:"topK"`
	Seed             int            `json:"seed"`
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Analyze sends the candidate document (and job description) to Gemini
// and returns the validated analysis. Generation is pinned for
// determinism: temperature 0, topK 1, fixed seed.
func (c *GeminiClient) Analyze(ctx context.Context, req Request) (*models.AnalysisResult, error) {
	parts := c.buildParts(req)

	body := geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      0,
			TopP:             0.95,
			TopK:             1,
			Seed:             42,
			ResponseMimeType: "application/json",
			ResponseSchema:   resultSchema(),
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API returned status %d: %s", resp.StatusCode, string(raw))
	}

	var gr geminiResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if gr.Error != nil {
		return nil, fmt.Errorf("gemini API error %d: %s", gr.Error.Code, gr.Error.Message)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response text generated")
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	if err := c.validate.Struct(&result); err != nil {
		return nil, fmt.Errorf("analysis failed schema validation: %w", err)
	}

	result.ID = uuid.New().String()
	result.Date = c.now().UTC().Format(time.RFC3339)
	result.ModeUsed = req.Mode
	return &result, nil
}

func (c *GeminiClient) buildParts(req Request) []geminiPart {
	prompt := systemPrompt(req.Mode, req.Language, c.now())

	parts := []geminiPart{{
		InlineData: &geminiInlineData{
			MimeType: orDefaultMime(req.Document.MimeType),
			Data:     base64.StdEncoding.EncodeToString(req.Document.Data),
		},
	}}

	if req.JobDescriptionDoc != nil {
		parts = append(parts,
			geminiPart{InlineData: &geminiInlineData{
				MimeType: orDefaultMime(req.JobDescriptionDoc.MimeType),
				Data:     base64.StdEncoding.EncodeToString(req.JobDescriptionDoc.Data),
			}},
			geminiPart{Text: prompt + "\n\nDocument 1 is the CV. Document 2 is the Job Description. Analyze Document 1 based on Document 2."},
		)
		return parts
	}

	parts = append(parts, geminiPart{
		Text: fmt.Sprintf("%s\n\nHere is the JOB DESCRIPTION:\n%q\n\nAnalyze the attached CV.", prompt, req.JobDescriptionText),
	})
	return parts
}

func orDefaultMime(mime string) string {
	if mime == "" {
		return defaultMime
	}
	return mime
}

var _ Client = (*GeminiClient)(nil)
