package analyzer

func stringType() map[string]any { return map[string]any{"type": "STRING"} }

func stringArray() map[string]any {
	return map[string]any{"type": "ARRAY", "items": stringType()}
}

func numberType() map[string]any { return map[string]any{"type": "NUMBER"} }

// resultSchema is the structured-output contract sent with every
// request. Gemini constrains decoding to it, so a response that parses
// is already shaped like an AnalysisResult; range checks still run
// through the validator afterwards.
func resultSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"candidateName": stringType(),
			"email":         stringType(),

			"score":           numberType(),
			"technicalScore":  numberType(),
			"experienceScore": numberType(),
			"softSkillScore":  numberType(),
			"formattingScore": numberType(),

			"summary":    stringType(),
			"strengths":  stringArray(),
			"weaknesses": stringArray(),
			"recommendation": map[string]any{
				"type": "STRING",
				"enum": []string{"HIRE", "MAYBE", "PASS"},
			},
			"reasoning": stringType(),

			"education": stringArray(),
			"languages": stringArray(),
			"interests": stringArray(),

			"redFlags":    stringArray(),
			"hasGaps":     map[string]any{"type": "BOOLEAN"},
			"gapAnalysis": stringType(),

			"matchingSkills": stringArray(),
			"missingSkills":  stringArray(),

			"interviewQuestions": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"technical":  stringArray(),
					"behavioral": stringArray(),
				},
				"required": []string{"technical", "behavioral"},
			},
			"emailDrafts": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"reject":   stringType(),
					"waitlist": stringType(),
					"invite":   stringType(),
				},
			},
		},
		"required": []string{
			"candidateName", "score",
			"technicalScore", "experienceScore", "softSkillScore", "formattingScore",
			"summary", "strengths", "weaknesses", "recommendation", "reasoning",
			"education", "languages", "interests",
			"redFlags", "hasGaps", "gapAnalysis",
			"matchingSkills", "missingSkills",
			"interviewQuestions", "emailDrafts",
		},
	}
}
