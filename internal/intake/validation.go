// Package intake implements the rules of the multi-step analysis form:
// per-step field validation and resume file upload handling.
package intake

import (
	"errors"
	"regexp"
	"strings"
)

// Form steps. The intake wizard collects contact details first, then the
// career profile, then skills and timeline.
const (
	StepContact = 1
	StepCareer  = 2
	StepSkills  = 3
)

// ErrUnknownStep is returned for step numbers outside the wizard range.
var ErrUnknownStep = errors.New("step must be 1, 2 or 3")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormData is the full intake form state.
type FormData struct {
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

// ValidateStep checks one wizard step and returns field-level error
// messages keyed by field name. An empty map means the step is valid.
func ValidateStep(step int, form *FormData) (map[string]string, error) {
	fieldErrors := make(map[string]string)

	switch step {
	case StepContact:
		if strings.TrimSpace(form.Name) == "" {
			fieldErrors["name"] = "Name is required"
		}
		if strings.TrimSpace(form.Email) == "" {
			fieldErrors["email"] = "Email is required"
		} else if !emailPattern.MatchString(form.Email) {
			fieldErrors["email"] = "Please enter a valid email address"
		}

	case StepCareer:
		if strings.TrimSpace(form.CurrentRole) == "" {
			fieldErrors["currentRole"] = "Current role is required"
		}
		if form.YearsOfExperience == "" {
			fieldErrors["yearsOfExperience"] = "Years of experience is required"
		}
		if form.CurrentSalary == "" {
			fieldErrors["currentSalary"] = "Current salary range is required"
		}
		if strings.TrimSpace(form.TargetRole) == "" {
			fieldErrors["targetRole"] = "Target role is required"
		}

	case StepSkills:
		if strings.TrimSpace(form.Skills) == "" {
			fieldErrors["skills"] = "Please list your skills"
		}
		if form.Timeline == "" {
			fieldErrors["timeline"] = "Timeline is required"
		}

	default:
		return nil, ErrUnknownStep
	}

	return fieldErrors, nil
}

// Validate runs every wizard step and merges the field errors.
func Validate(form *FormData) map[string]string {
	merged := make(map[string]string)
	for step := StepContact; step <= StepSkills; step++ {
		fieldErrors, _ := ValidateStep(step, form)
		for field, msg := range fieldErrors {
			merged[field] = msg
		}
	}
	return merged
}
