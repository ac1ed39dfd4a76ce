package jobmatch

import (
	"fmt"
	"sort"
	"strings"
)

// catalogNote is the fixed disclaimer attached to every response.
const catalogNote = "Job listings are prototype mock data. Integrate LinkedIn and Naukri APIs for real job data."

var fixedSuggestions = []string{
	"Customize your resume for each application using keywords from the job description",
	"Highlight projects and experience that match the required skills",
	"Consider obtaining certifications for missing skills like AWS or Kubernetes",
	"Network with professionals at target companies through LinkedIn",
	"Prepare for technical interviews by practicing common coding problems",
}

// Match scores the catalog against a validated request and returns all
// entries sorted by score. The sort is stable: equal scores keep catalog
// order.
func Match(req *Request) *Result {
	skills := strings.ToLower(req.Skills)
	flags := detectFlags(skills, strings.ToLower(req.ResumeText))

	recs := make([]Recommendation, 0, len(catalog))
	for _, entry := range catalog {
		recs = append(recs, score(entry, flags))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	targetRole := req.TargetRole
	if targetRole == "" {
		targetRole = "Software Engineer"
	}

	return &Result{
		RecommendedJobs: recs,
		Summary:         summary(targetRole, skills, recs),
		Suggestions:     fixedSuggestions,
		Note:            catalogNote,
	}
}

// detectFlags derives skill presence from the skills field and resume text.
// Substring semantics are intentional: "java" also fires on "javascript".
func detectFlags(skillsLower, resumeLower string) map[string]bool {
	has := func(kw string) bool {
		return strings.Contains(skillsLower, kw) || strings.Contains(resumeLower, kw)
	}
	return map[string]bool{
		skillReact:  has(skillReact),
		skillNode:   has(skillNode),
		skillPython: has(skillPython),
		skillJava:   has(skillJava),
		skillAWS:    has(skillAWS),
	}
}

func score(entry catalogEntry, flags map[string]bool) Recommendation {
	matchScore := entry.Match.Fallback
	if entry.Match.matches(flags) {
		matchScore = entry.Match.Score
	}

	missing := entry.MissingSkills
	if entry.MissingSkillsAWS != nil && flags[skillAWS] {
		missing = *entry.MissingSkillsAWS
	}

	return Recommendation{
		ID:             entry.ID,
		Title:          entry.Title,
		Company:        entry.Company,
		Location:       entry.Location,
		Salary:         entry.Salary,
		MatchScore:     matchScore,
		MatchReasons:   copyList(entry.MatchReasons),
		RequiredSkills: copyList(entry.RequiredSkills),
		MissingSkills:  copyList(missing),
		JobDescription: entry.Description,
		Source:         entry.Source,
		URL:            entry.URL,
		PostedDate:     entry.PostedDate,
		Type:           entry.Type,
	}
}

func summary(targetRole, skillsLower string, recs []Recommendation) string {
	return fmt.Sprintf(
		"Based on your resume and profile, we've identified %d highly relevant job opportunities. "+
			"These positions match %s roles and align with your skills in %s... "+
			"The top matches show %d%% compatibility, indicating strong alignment with your background. "+
			"Focus on positions with match scores above 80%% for the best fit.",
		len(recs), targetRole, prefix(skillsLower, 50), recs[0].MatchScore)
}

// copyList keeps the catalog immutable and JSON output a [] rather
// than null for empty lists.
func copyList(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
