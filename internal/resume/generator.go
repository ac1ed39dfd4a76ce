package resume

import (
	"fmt"
	"strings"
)

// signal keyword groups. Plain substring matching is intentional and must
// stay that way: "java" matching inside "javascript" is observable behavior.
var (
	techKeywords       = []string{"javascript", "python", "java"}
	experienceKeywords = []string{"experience", "worked", "years"}
	educationKeywords  = []string{"education", "degree", "university"}
	projectKeywords    = []string{"project", "built", "developed"}
)

const (
	scoreFloor = 45
	scoreCeil  = 92
)

// signals are the boolean keyword-presence flags driving the critique.
type signals struct {
	tech       bool
	experience bool
	education  bool
	projects   bool
}

func detect(text string) signals {
	lower := strings.ToLower(text)
	return signals{
		tech:       containsAny(lower, techKeywords),
		experience: containsAny(lower, experienceKeywords),
		education:  containsAny(lower, educationKeywords),
		projects:   containsAny(lower, projectKeywords),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Analyze builds a complete critique for a validated request.
func Analyze(req *Request) *Analysis {
	sig := detect(req.ResumeText)
	score := overallScore(sig, len(req.ResumeText))

	return &Analysis{
		OverallScore:    score,
		Strengths:       newStrengths(),
		Weaknesses:      newWeaknesses(),
		Suggestions:     newSuggestions(req.TargetRole),
		ATSOptimization: newATSOptimization(atsScore(sig)),
		KeywordAnalysis: newKeywordAnalysis(req.TargetRole),
		Summary:         summary(sig, score),
	}
}

// overallScore starts at 50 and adds fixed weights per present signal,
// clamped to [45, 92].
func overallScore(sig signals, length int) int {
	score := 50
	if sig.tech {
		score += 15
	}
	if sig.experience {
		score += 15
	}
	if sig.education {
		score += 10
	}
	if sig.projects {
		score += 10
	}
	if length > 500 {
		score += 5
	}
	if length > 1000 {
		score += 5
	}

	if score < scoreFloor {
		score = scoreFloor
	}
	if score > scoreCeil {
		score = scoreCeil
	}
	return score
}

// atsScore is a binary branch, independent of the overall score.
func atsScore(sig signals) int {
	if sig.tech && sig.experience {
		return 75
	}
	return 60
}

func summary(sig signals, score int) string {
	experience := "some experience"
	if sig.experience {
		experience = "good experience"
	}

	tech := "technical background"
	if sig.tech {
		tech = "relevant technical skills"
	}

	readiness := "room for improvement"
	switch {
	case score >= 75:
		readiness = "strong"
	case score >= 60:
		readiness = "moderate"
	}

	projects := "Consider adding more project examples."
	if sig.projects {
		projects = "Your project experience is a strong point."
	}

	education := "could benefit from more education information"
	if sig.education {
		education = "includes education details"
	}

	return fmt.Sprintf(
		"Your resume shows a solid foundation with %s and %s. "+
			"The overall score is %d/100, indicating %s readiness. %s "+
			"Focus on adding quantifiable achievements and ensuring ATS compatibility to maximize your chances. "+
			"The resume %s, which is important for many roles. "+
			"With the suggested improvements, particularly around metrics and keywords, "+
			"you can significantly improve your resume's effectiveness.",
		experience, tech, score, readiness, projects, education)
}
