// Package api exposes the analysis generators over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/blockedby/career-os/internal/intake"
	"github.com/blockedby/career-os/internal/jobmatch"
	"github.com/blockedby/career-os/internal/logger"
	"github.com/blockedby/career-os/internal/publisher"
	"github.com/blockedby/career-os/internal/report"
	"github.com/blockedby/career-os/internal/resume"
	"github.com/blockedby/career-os/internal/tasks"
)

// Generic failure messages. The analysis form shows these verbatim, so
// internal detail never reaches the client.
const (
	msgAnalyzeFailed = "An unexpected error occurred. Please try again later."
	msgInternalError = "An unexpected error occurred"
)

// TaskGenerator produces the task list response.
type TaskGenerator interface {
	Generate(ctx context.Context, req *tasks.Request) *tasks.Result
}

// LeadPublisher pushes captured leads to downstream consumers.
type LeadPublisher interface {
	PublishLeadCaptured(ctx context.Context, event publisher.LeadCapturedEvent) error
}

// Handler holds the dependencies of the HTTP endpoints.
type Handler struct {
	tasks     TaskGenerator
	publisher LeadPublisher
	hub       *Hub
	delay     time.Duration
}

// NewHandler creates an API handler. Publisher and hub may be nil, in which
// case lead events are silently skipped. A non-zero delay is applied to the
// three analysis endpoints before responding.
func NewHandler(taskgen TaskGenerator, pub LeadPublisher, hub *Hub, delay time.Duration) *Handler {
	return &Handler{
		tasks:     taskgen,
		publisher: pub,
		hub:       hub,
		delay:     delay,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("encode response", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// recoverTo converts a handler panic into the endpoint's generic 500 body.
func recoverTo(w http.ResponseWriter, message string) {
	if rec := recover(); rec != nil {
		logger.Get().Error().Interface("panic", rec).Msg("handler panic")
		respondError(w, http.StatusInternalServerError, message)
	}
}

func (h *Handler) simulateDelay(ctx context.Context) {
	if h.delay <= 0 {
		return
	}
	select {
	case <-time.After(h.delay):
	case <-ctx.Done():
	}
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": "dev",
	})
}

// Analyze generates a career report from the intake profile and captures
// the lead as a side effect.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	defer recoverTo(w, msgAnalyzeFailed)

	var req report.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusInternalServerError, msgAnalyzeFailed)
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.simulateDelay(r.Context())

	rep := report.Generate(&req)
	h.captureLead(r.Context(), &req, rep)

	respondJSON(w, http.StatusOK, rep)
}

// captureLead publishes the lead event and notifies WebSocket subscribers.
// Both are best-effort: a broker outage never fails the analysis.
func (h *Handler) captureLead(ctx context.Context, req *report.Request, rep *report.CareerReport) {
	event := publisher.LeadCapturedEvent{
		LeadID:         uuid.New(),
		Name:           req.Name,
		Email:          req.Email,
		CurrentRole:    req.CurrentRole,
		TargetRole:     req.TargetRole,
		ReadinessScore: rep.JobReadinessScore,
		CapturedAt:     time.Now().UTC(),
	}

	if h.publisher != nil {
		if err := h.publisher.PublishLeadCaptured(ctx, event); err != nil {
			logger.Error("publish lead", err)
		}
	}

	if h.hub != nil {
		h.hub.Broadcast(newEvent(EventLeadCaptured, map[string]interface{}{
			"lead_id":         event.LeadID.String(),
			"target_role":     event.TargetRole,
			"readiness_score": event.ReadinessScore,
		}))
		h.hub.Broadcast(newEvent(EventReportGenerated, map[string]interface{}{
			"lead_id":         event.LeadID.String(),
			"readiness_score": event.ReadinessScore,
		}))
	}
}

// AnalyzeResume generates a resume critique.
func (h *Handler) AnalyzeResume(w http.ResponseWriter, r *http.Request) {
	defer recoverTo(w, msgInternalError)

	var req resume.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.simulateDelay(r.Context())

	analysis := resume.Analyze(&req)

	if h.hub != nil {
		h.hub.Broadcast(newEvent(EventResumeAnalyzed, map[string]interface{}{
			"overall_score": analysis.OverallScore,
		}))
	}

	respondJSON(w, http.StatusOK, analysis)
}

// JobRecommendations scores the job catalog against the resume.
func (h *Handler) JobRecommendations(w http.ResponseWriter, r *http.Request) {
	defer recoverTo(w, msgInternalError)

	var req jobmatch.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.simulateDelay(r.Context())

	result := jobmatch.Match(&req)

	if h.hub != nil {
		top := 0
		if len(result.RecommendedJobs) > 0 {
			top = result.RecommendedJobs[0].MatchScore
		}
		h.hub.Broadcast(newEvent(EventJobsMatched, map[string]interface{}{
			"jobs":      len(result.RecommendedJobs),
			"top_score": top,
		}))
	}

	respondJSON(w, http.StatusOK, result)
}

// GenerateTasks returns a task list for a project prompt. The endpoint
// never fails: bad input and upstream errors both produce the fallback
// list with status 200.
func (h *Handler) GenerateTasks(w http.ResponseWriter, r *http.Request) {
	defer recoverTo(w, msgInternalError)

	var req tasks.Request
	// decode errors leave the zero request, which generates the default
	// fallback list
	_ = json.NewDecoder(r.Body).Decode(&req)

	result := h.tasks.Generate(r.Context(), &req)

	if h.hub != nil {
		h.hub.Broadcast(newEvent(EventTasksGenerated, map[string]interface{}{
			"count":  len(result.Tasks),
			"source": string(result.Source),
		}))
	}

	respondJSON(w, http.StatusOK, result)
}

type validateIntakeRequest struct {
	Step int `json:"step"`
	intake.FormData
}

type validateIntakeResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// ValidateIntake checks one wizard step of the intake form, or the whole
// form when step is omitted.
func (h *Handler) ValidateIntake(w http.ResponseWriter, r *http.Request) {
	defer recoverTo(w, msgInternalError)

	var req validateIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var fieldErrors map[string]string
	if req.Step == 0 {
		fieldErrors = intake.Validate(&req.FormData)
	} else {
		var err error
		fieldErrors, err = intake.ValidateStep(req.Step, &req.FormData)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	respondJSON(w, http.StatusOK, validateIntakeResponse{
		Valid:  len(fieldErrors) == 0,
		Errors: fieldErrors,
	})
}

// UploadResume accepts a multipart resume upload and returns the extracted
// plain text.
func (h *Handler) UploadResume(w http.ResponseWriter, r *http.Request) {
	defer recoverTo(w, msgInternalError)

	r.Body = http.MaxBytesReader(w, r.Body, intake.MaxUploadSize+64*1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if err := intake.CheckFile(header.Filename, header.Size); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := intake.ExtractText(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"resumeText": text})
}
