// Package report generates career growth reports from intake profiles.
//
// Reports are deterministic: a readiness score and salary band are computed
// from the profile, everything else is filled from fixed templates with role
// interpolation. Nothing is persisted, a report lives only in the response.
package report

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMissingFields is returned when a required profile field is empty.
// The message is part of the wire contract.
var ErrMissingFields = errors.New("Missing required fields")

const defaultYears = 3

// Request is the intake profile submitted by the analysis form.
type Request struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	CurrentRole       string `json:"currentRole"`
	YearsOfExperience string `json:"yearsOfExperience"`
	CurrentSalary     string `json:"currentSalary"`
	TargetRole        string `json:"targetRole"`
	Skills            string `json:"skills"`
	Timeline          string `json:"timeline"`
	ResumeText        string `json:"resumeText,omitempty"`
}

// Validate checks that the required profile fields are present.
// Numeric and bucket fields are not validated here, they degrade silently.
func (r *Request) Validate() error {
	if r.Name == "" || r.Email == "" || r.CurrentRole == "" || r.TargetRole == "" {
		return ErrMissingFields
	}
	return nil
}

// Years parses the free-text experience field.
// Unparsable input falls back to the default rather than erroring.
func (r *Request) Years() int {
	if y, err := strconv.Atoi(strings.TrimSpace(r.YearsOfExperience)); err == nil {
		return y
	}
	return defaultYears
}

// CareerReport is the full analysis returned to the client.
type CareerReport struct {
	JobReadinessScore int             `json:"jobReadinessScore"`
	SkillGaps         SkillGaps       `json:"skillGaps"`
	SalaryPotential   SalaryPotential `json:"salaryPotential"`
	Roadmap           Roadmap         `json:"roadmap"`
	NextSteps         []string        `json:"nextSteps"`
	LearningPath      LearningPath    `json:"learningPath"`
	Timeline          Timeline        `json:"timeline"`
	Summary           string          `json:"summary"`
}

// SkillGaps groups gap descriptions by severity.
type SkillGaps struct {
	Critical []string `json:"critical"`
	Moderate []string `json:"moderate"`
	Minor    []string `json:"minor"`
}

// SalaryPotential describes current and projected compensation.
type SalaryPotential struct {
	Current           string `json:"current"`
	Target            string `json:"target"`
	PotentialIncrease string `json:"potentialIncrease"`
	MarketInsights    string `json:"marketInsights"`
}

// Roadmap is the fixed three-phase transition plan.
type Roadmap struct {
	Phase1 Phase `json:"phase1"`
	Phase2 Phase `json:"phase2"`
	Phase3 Phase `json:"phase3"`
}

// Phase is a single roadmap stage.
type Phase struct {
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Actions  []string `json:"actions"`
}

// LearningPath groups course topics by level.
type LearningPath struct {
	Foundational []string `json:"foundational"`
	Intermediate []string `json:"intermediate"`
	Advanced     []string `json:"advanced"`
}

// Timeline estimates the transition duration.
type Timeline struct {
	Realistic  string   `json:"realistic"`
	Optimistic string   `json:"optimistic"`
	Factors    []string `json:"factors"`
}
