// Package tasks generates short actionable task lists for a project prompt.
//
// Generation never fails: when the completion service is unconfigured,
// unreachable or returns garbage, a deterministic fallback list is returned
// instead. The Result carries which path produced it.
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/blockedby/career-os/internal/logger"
)

// Completer defines the completion interface for task generation.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Source tells which path produced a Result.
type Source string

// Result sources.
const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

const (
	defaultPrompt = "Project tasks"
	maxTasks      = 6
)

// Request is the task generation input.
type Request struct {
	Prompt        string   `json:"prompt"`
	ExistingTasks []string `json:"existingTasks"`
}

// Result carries either the upstream task list or the canned fallback.
type Result struct {
	Tasks  []string `json:"tasks"`
	Source Source   `json:"-"`
}

// Service generates task lists.
type Service struct {
	llm Completer
}

// NewService creates a task generation service.
// A nil completer is valid and forces the fallback path.
func NewService(llm Completer) *Service {
	return &Service{llm: llm}
}

// Generate produces a task list for the prompt. It always succeeds.
func (s *Service) Generate(ctx context.Context, req *Request) *Result {
	prompt := req.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}

	if s.llm == nil {
		return fallback(prompt)
	}

	content, err := s.llm.Complete(ctx, systemPrompt(req.ExistingTasks), prompt)
	if err != nil {
		logger.Error("task generation upstream failed, using fallback", err)
		return fallback(prompt)
	}

	parsed := parseTasks(content)
	if len(parsed) == 0 {
		logger.Info("task generation returned nothing usable, using fallback")
		return fallback(prompt)
	}

	if len(parsed) > maxTasks {
		parsed = parsed[:maxTasks]
	}
	return &Result{Tasks: parsed, Source: SourceLLM}
}

func fallback(prompt string) *Result {
	return &Result{
		Tasks: []string{
			prompt + " - Research phase",
			prompt + " - Planning phase",
			prompt + " - Execution phase",
			prompt + " - Review phase",
		},
		Source: SourceFallback,
	}
}

func systemPrompt(existing []string) string {
	var b strings.Builder
	b.WriteString("You are a helpful project management assistant. Generate a concise list of actionable tasks based on the user's request. \n")
	b.WriteString("Return ONLY a JSON array of task titles (strings), nothing else. Each task should be specific and actionable.\n")
	if len(existing) > 0 {
		fmt.Fprintf(&b, "Avoid duplicating these existing tasks: %s\n", strings.Join(existing, ", "))
	}
	b.WriteString("Generate 4-6 tasks.")
	return b.String()
}

var (
	bulletPrefix = regexp.MustCompile(`^[-*•]\s*`)
	numberPrefix = regexp.MustCompile(`^\d+\.\s*`)
)

// parseTasks extracts a task list from a completion. The expected shape is
// a JSON string array, possibly wrapped in markdown fences; anything else
// is split on lines with bullets and numbering stripped.
func parseTasks(content string) []string {
	cleaned := strings.ReplaceAll(content, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var tasks []string
	if err := json.Unmarshal([]byte(cleaned), &tasks); err == nil {
		return nonEmpty(tasks)
	}

	var lines []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = bulletPrefix.ReplaceAllString(line, "")
		line = numberPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
		if len(lines) == maxTasks {
			break
		}
	}
	return lines
}

func nonEmpty(tasks []string) []string {
	out := tasks[:0]
	for _, t := range tasks {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
