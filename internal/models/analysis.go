package models

// AnalysisMode selects the scoring policy the external analyzer applies.
type AnalysisMode string

const (
	ModeStrict   AnalysisMode = "strict"
	ModeBalanced AnalysisMode = "balanced"
	ModeFlexible AnalysisMode = "flexible"
)

// Valid reports whether the mode is one of the three known policies.
func (m AnalysisMode) Valid() bool {
	return m == ModeStrict || m == ModeBalanced || m == ModeFlexible
}

// Language selects the analyzer's output language.
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// Valid reports whether the language is supported.
func (l Language) Valid() bool {
	return l == LanguageFrench || l == LanguageEnglish
}

// Recommendation is the analyzer's hiring verdict.
type Recommendation string

const (
	RecommendHire  Recommendation = "HIRE"
	RecommendMaybe Recommendation = "MAYBE"
	RecommendPass  Recommendation = "PASS"
)

// InterviewQuestions groups the generated interview material.
type InterviewQuestions struct {
	Technical  []string `json:"technical" msgpack:"technical" validate:"required"`
	Behavioral []string `json:"behavioral" msgpack:"behavioral" validate:"required"`
}

// EmailDrafts holds the three generated outcome emails.
type EmailDrafts struct {
	Reject   string `json:"reject" msgpack:"reject"`
	Waitlist string `json:"waitlist" msgpack:"waitlist"`
	Invite   string `json:"invite" msgpack:"invite"`
}

// AnalysisResult is the structured output of one successful analysis.
// The sub-scores have fixed maxima (40/30/20/10) and sum to the overall
// score by construction inside the analyzer; this side only checks the
// ranges. Immutable once created.
type AnalysisResult struct {
	ID            string `json:"id" msgpack:"id"`
	CandidateName string `json:"candidateName" msgpack:"candidateName" validate:"required"`
	Email         string `json:"email,omitempty" msgpack:"email,omitempty"`

	Score           int `json:"score" msgpack:"score" validate:"min=0,max=100"`
	TechnicalScore  int `json:"technicalScore" msgpack:"technicalScore" validate:"min=0,max=40"`
	ExperienceScore int `json:"experienceScore" msgpack:"experienceScore" validate:"min=0,max=30"`
	SoftSkillScore  int `json:"softSkillScore" msgpack:"softSkillScore" validate:"min=0,max=20"`
	FormattingScore int `json:"formattingScore" msgpack:"formattingScore" validate:"min=0,max=10"`

	Summary        string         `json:"summary" msgpack:"summary" validate:"required"`
	Strengths      []string       `json:"strengths" msgpack:"strengths"`
	Weaknesses     []string       `json:"weaknesses" msgpack:"weaknesses"`
	Recommendation Recommendation `json:"recommendation" msgpack:"recommendation" validate:"required,oneof=HIRE MAYBE PASS"`
	Reasoning      string         `json:"reasoning" msgpack:"reasoning"`

	Education []string `json:"education" msgpack:"education"`
	Languages []string `json:"languages" msgpack:"languages"`
	Interests []string `json:"interests" msgpack:"interests"`

	RedFlags    []string `json:"redFlags" msgpack:"redFlags"`
	HasGaps     bool     `json:"hasGaps" msgpack:"hasGaps"`
	GapAnalysis string   `json:"gapAnalysis" msgpack:"gapAnalysis"`

	MatchingSkills []string `json:"matchingSkills" msgpack:"matchingSkills"`
	MissingSkills  []string `json:"missingSkills" msgpack:"missingSkills"`

	InterviewQuestions InterviewQuestions `json:"interviewQuestions" msgpack:"interviewQuestions"`
	EmailDrafts        EmailDrafts        `json:"emailDrafts" msgpack:"emailDrafts"`

	Date     string       `json:"date" msgpack:"date"` // ISO 8601
	ModeUsed AnalysisMode `json:"modeUsed" msgpack:"modeUsed"`
}
