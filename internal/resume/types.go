// Package resume generates resume critiques from plain resume text.
package resume

import (
	"errors"
	"strings"
)

// ErrResumeTooShort is returned when the resume text is missing or under
// the 50 character minimum. The message is part of the wire contract.
var ErrResumeTooShort = errors.New("Resume text is required and must be at least 50 characters")

const minResumeLength = 50

// Request carries the resume text plus optional role context.
type Request struct {
	ResumeText  string `json:"resumeText"`
	CurrentRole string `json:"currentRole,omitempty"`
	TargetRole  string `json:"targetRole,omitempty"`
}

// Validate checks the resume text minimum length.
func (r *Request) Validate() error {
	if len(strings.TrimSpace(r.ResumeText)) < minResumeLength {
		return ErrResumeTooShort
	}
	return nil
}

// Analysis is the full critique returned to the client.
type Analysis struct {
	OverallScore    int             `json:"overallScore"`
	Strengths       []string        `json:"strengths"`
	Weaknesses      []string        `json:"weaknesses"`
	Suggestions     Suggestions     `json:"suggestions"`
	ATSOptimization ATSOptimization `json:"atsOptimization"`
	KeywordAnalysis KeywordAnalysis `json:"keywordAnalysis"`
	Summary         string          `json:"summary"`
}

// Suggestions groups improvement advice by priority tier.
type Suggestions struct {
	Critical  []Suggestion `json:"critical"`
	Important []Suggestion `json:"important"`
	Optional  []Suggestion `json:"optional"`
}

// Suggestion is a single piece of advice.
type Suggestion struct {
	Category   string `json:"category"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// ATSOptimization reports applicant-tracking-system compatibility.
type ATSOptimization struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// KeywordAnalysis lists missing and suggested resume keywords.
type KeywordAnalysis struct {
	MissingKeywords   []string `json:"missingKeywords"`
	SuggestedKeywords []string `json:"suggestedKeywords"`
}
