package resume

import (
	"fmt"
	"strings"
)

func newStrengths() []string {
	return []string{
		"Clear professional experience section with quantifiable achievements",
		"Good use of action verbs and technical keywords",
		"Well-structured format that is easy to scan",
		"Demonstrates relevant technical skills for the target role",
	}
}

func newWeaknesses() []string {
	return []string{
		"Missing specific metrics and quantifiable results",
		"Could benefit from more industry-specific keywords",
		"Education section could be more detailed",
		"Limited mention of soft skills and leadership experience",
	}
}

func newSuggestions(targetRole string) Suggestions {
	role := targetRole
	if role == "" {
		role = "your target role"
	}

	return Suggestions{
		Critical: []Suggestion{
			{
				Category:   "ATS Optimization",
				Issue:      "Resume may not pass Applicant Tracking Systems due to formatting",
				Suggestion: "Use standard fonts (Arial, Calibri), avoid tables and graphics, and ensure keywords match job descriptions. Save as .docx or .pdf format.",
				Priority:   "high",
			},
			{
				Category:   "Quantifiable Achievements",
				Issue:      "Lack of specific metrics and numbers",
				Suggestion: `Add quantifiable achievements like "Increased performance by 30%", "Managed team of 5 developers", "Reduced costs by $50K". Numbers make your impact clear.`,
				Priority:   "high",
			},
		},
		Important: []Suggestion{
			{
				Category:   "Keywords",
				Issue:      "Missing important industry keywords",
				Suggestion: fmt.Sprintf("Add keywords relevant to %s such as specific technologies, methodologies, and industry terms that appear in job postings.", role),
				Priority:   "medium",
			},
			{
				Category:   "Skills Section",
				Issue:      "Skills could be better organized",
				Suggestion: "Group skills by category (Technical, Tools, Soft Skills) and list proficiency levels. Include both hard and soft skills.",
				Priority:   "medium",
			},
		},
		Optional: []Suggestion{
			{
				Category:   "Design",
				Issue:      "Resume design could be more modern",
				Suggestion: "Consider using a modern template with better visual hierarchy. Ensure it remains ATS-friendly while being visually appealing.",
				Priority:   "low",
			},
			{
				Category:   "Summary",
				Issue:      "Professional summary could be more compelling",
				Suggestion: "Add a 2-3 line professional summary at the top highlighting your key strengths and career goals. Make it specific and tailored to your target role.",
				Priority:   "low",
			},
		},
	}
}

func newATSOptimization(score int) ATSOptimization {
	return ATSOptimization{
		Score: score,
		Issues: []string{
			"May contain formatting that ATS systems cannot parse",
			"Missing some standard section headers",
			"Keywords may not match job description requirements",
		},
		Recommendations: []string{
			"Use standard section headers: Experience, Education, Skills",
			"Include keywords from job descriptions naturally throughout",
			"Avoid headers, footers, and complex formatting",
			"Use simple bullet points instead of tables or columns",
		},
	}
}

func newKeywordAnalysis(targetRole string) KeywordAnalysis {
	first := "Senior"
	if fields := strings.Fields(targetRole); len(fields) > 0 {
		first = fields[0]
	}

	return KeywordAnalysis{
		MissingKeywords: []string{
			first,
			"Agile",
			"CI/CD",
			"Microservices",
			"Cloud Computing",
		},
		SuggestedKeywords: []string{
			"Problem-solving",
			"Team collaboration",
			"Code review",
			"Technical leadership",
			"Best practices",
		},
	}
}
