package analyzer

import (
	"fmt"
	"time"

	"github.com/recruitai/backend/internal/models"
)

const strictInstruction = `
MODE: STRICT & UNCOMPROMISING (The "Gatekeeper")
PHILOSOPHY: "When in doubt, Reject."

SCORING ALGORITHM:
1. Technical (Max 40):
   - EXACT keyword matching required.
   - DEDUCT 2 points for EACH missing hard skill from the Job Description.
   - NO points for "conceptual knowledge" without proof.
2. Experience (Max 30):
   - GAP PENALTY: Any unexplained gap > 3 months = -5 points.
   - JUNIOR CAP: If total experience < 3 years, CAP experience score at 15/30. No exceptions.
   - JOB HOPPING: < 1 year in a position = Red Flag.
3. Soft Skills (Max 20):
   - Only count if PROVEN by numbers/results.
4. Form (Max 10):
   - Deduct 1 point per typo/formatting error.
`

const balancedInstruction = `
MODE: BALANCED & REALISTIC (The "Hiring Manager")
PHILOSOPHY: "Look for the best fit, accept minor flaws."

SCORING ALGORITHM:
1. Technical (Max 40):
   - Accept SYNONYMS and related tech (e.g., React skills count partially for Vue).
   - Focus on Core Skills (80% match is good).
2. Experience (Max 30):
   - GAP TOLERANCE: Gaps < 6 months are acceptable.
   - PROJECTS: Personal projects count as partial experience (up to 5 points).
3. Soft Skills (Max 20):
   - Infer skills from project descriptions and background.
4. Form (Max 10):
   - Standard professional expectation.
`

const flexibleInstruction = `
MODE: FLEXIBLE & OPEN (The "Talent Scout")
PHILOSOPHY: "Hire for attitude, train for skill."

SCORING ALGORITHM:
1. Technical (Max 40):
   - Focus on POTENTIAL and TRANSFERABLE skills.
   - If they know Python, assume they can learn Ruby (Valid).
2. Experience (Max 30):
   - IGNORE GAPS under 1 year.
   - EDUCATION/BOOTCAMPS count as Full Experience.
   - VALUE motivation and career transition highly.
3. Soft Skills (Max 20):
   - Bonus points for passion, self-learning, and adaptability.
4. Form (Max 10):
   - Very lenient.
`

func modeInstruction(mode models.AnalysisMode) string {
	switch mode {
	case models.ModeBalanced:
		return balancedInstruction
	case models.ModeFlexible:
		return flexibleInstruction
	default:
		return strictInstruction
	}
}

func languageDirective(lang models.Language) string {
	if lang == models.LanguageEnglish {
		return "RESPOND ONLY IN ENGLISH."
	}
	return "RÉPONDRE UNIQUEMENT EN FRANÇAIS."
}

// systemPrompt assembles the full instruction block. Anchoring the
// current date keeps the model from flagging in-progress degrees or
// "Present" positions as gaps.
func systemPrompt(mode models.AnalysisMode, lang models.Language, now time.Time) string {
	date := now.Format("2 January 2006")
	year := now.Year()

	return fmt.Sprintf(`*** CRITICAL PRIORITY #1: METADATA EXTRACTION ***
- SCAN HEADER AND FOOTER FIRST.
- Extract Candidate Name.
- Extract Email Address (Look for @, 'mail:', or contact icons).
- NOTE: If email is not found, look at the very bottom of the last page.

*** PRIORITY #2: DATE & GAP LOGIC (ANTI-HALLUCINATION) ***
Current Date: %s (Year: %d).

RULES FOR DATES:
1. "Present", "Current", "Aujourd'hui" = %s.
2. FUTURE DATES:
   - If a degree ends in %d, it is VALID (Graduating soon/Just graduated). NOT A RED FLAG.
   - If a degree ends in %d, mark as "In Progress".
3. GAP ANALYSIS:
   - Cross-reference WORK dates with EDUCATION dates.
   - Overlap = NO GAP.
   - Period of Schooling/Bootcamp = VALID ACTIVITY (NOT Unemployment).

%s

GENERAL TASKS:
1. Extract Deep Data: Education, Languages, Interests.
2. Calculate Score based on the SCORING ALGORITHM above.
3. Generate 3 "Tricky" Technical Questions (Test specific weaknesses).
4. Generate 3 Emails (Reject, Waitlist, Invite) customized to the candidate.

%s`,
		date, year, date, year, year+1,
		modeInstruction(mode),
		languageDirective(lang),
	)
}
