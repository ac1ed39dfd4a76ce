// Package jobmatch scores a fixed catalog of postings against a resume.
//
// The catalog is the whole universe of results: every request gets all
// entries back, reordered by match score. Scoring is a per-entry choice
// between two fixed integers driven by keyword-presence flags.
package jobmatch

import (
	"errors"
	"strings"
)

// ErrResumeRequired is returned when the resume text is missing or under
// the 50 character minimum. The message is part of the wire contract.
var ErrResumeRequired = errors.New("Resume text is required for job matching")

const minResumeLength = 50

// Request carries the resume text plus optional profile context.
type Request struct {
	ResumeText  string `json:"resumeText"`
	CurrentRole string `json:"currentRole,omitempty"`
	TargetRole  string `json:"targetRole,omitempty"`
	Skills      string `json:"skills,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Validate checks the resume text minimum length.
func (r *Request) Validate() error {
	if len(strings.TrimSpace(r.ResumeText)) < minResumeLength {
		return ErrResumeRequired
	}
	return nil
}

// Recommendation is a single scored posting.
type Recommendation struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Salary         string   `json:"salary,omitempty"`
	MatchScore     int      `json:"matchScore"`
	MatchReasons   []string `json:"matchReasons"`
	RequiredSkills []string `json:"requiredSkills"`
	MissingSkills  []string `json:"missingSkills"`
	JobDescription string   `json:"jobDescription"`
	Source         string   `json:"source"`
	URL            string   `json:"url"`
	PostedDate     string   `json:"postedDate,omitempty"`
	Type           string   `json:"type,omitempty"`
}

// Result is the full job match response.
type Result struct {
	RecommendedJobs []Recommendation `json:"recommendedJobs"`
	Summary         string           `json:"summary"`
	Suggestions     []string         `json:"suggestions"`
	Note            string           `json:"note"`
}
