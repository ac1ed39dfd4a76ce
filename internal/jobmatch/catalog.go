package jobmatch

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// skill flag names the catalog match rules may reference.
const (
	skillReact  = "react"
	skillNode   = "node"
	skillPython = "python"
	skillJava   = "java"
	skillAWS    = "aws"
)

var knownSkills = map[string]bool{
	skillReact:  true,
	skillNode:   true,
	skillPython: true,
	skillJava:   true,
	skillAWS:    true,
}

// catalogEntry is one posting of the fixed catalog, including its
// declarative match rule.
type catalogEntry struct {
	ID           string    `yaml:"id"`
	Title        string    `yaml:"title"`
	Company      string    `yaml:"company"`
	Location     string    `yaml:"location"`
	Salary       string    `yaml:"salary"`
	Match        matchRule `yaml:"match"`
	MatchReasons []string  `yaml:"match_reasons"`

	RequiredSkills []string `yaml:"required_skills"`

	// MissingSkills is the default gap list. MissingSkillsAWS, when present,
	// replaces it for requests where the aws flag is set.
	MissingSkills    []string  `yaml:"missing_skills"`
	MissingSkillsAWS *[]string `yaml:"missing_skills_aws"`

	Description string `yaml:"description"`
	Source      string `yaml:"source"`
	URL         string `yaml:"url"`
	PostedDate  string `yaml:"posted_date"`
	Type        string `yaml:"type"`
}

// matchRule selects between two fixed scores. AnyOf matches when at least
// one referenced flag is set, AllOf when every one is. Exactly one of the
// two lists is expected per entry.
type matchRule struct {
	AnyOf    []string `yaml:"any_of"`
	AllOf    []string `yaml:"all_of"`
	Score    int      `yaml:"score"`
	Fallback int      `yaml:"fallback"`
}

func (r matchRule) matches(flags map[string]bool) bool {
	if len(r.AllOf) > 0 {
		for _, s := range r.AllOf {
			if !flags[s] {
				return false
			}
		}
		return true
	}
	for _, s := range r.AnyOf {
		if flags[s] {
			return true
		}
	}
	return false
}

// catalog is the fixed posting set, parsed once at process start.
var catalog = mustLoadCatalog()

func mustLoadCatalog() []catalogEntry {
	var doc struct {
		Jobs []catalogEntry `yaml:"jobs"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		panic(fmt.Sprintf("jobmatch: parse embedded catalog: %v", err))
	}
	if err := validateCatalog(doc.Jobs); err != nil {
		panic(fmt.Sprintf("jobmatch: invalid embedded catalog: %v", err))
	}
	return doc.Jobs
}

func validateCatalog(entries []catalogEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.ID == "" || e.Title == "" {
			return fmt.Errorf("entry %q: id and title are required", e.ID)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate entry id %q", e.ID)
		}
		seen[e.ID] = true

		if len(e.Match.AnyOf) == 0 && len(e.Match.AllOf) == 0 {
			return fmt.Errorf("entry %q: match rule needs any_of or all_of", e.ID)
		}
		for _, s := range append(append([]string{}, e.Match.AnyOf...), e.Match.AllOf...) {
			if !knownSkills[s] {
				return fmt.Errorf("entry %q: unknown skill flag %q", e.ID, s)
			}
		}
	}
	return nil
}
