package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blockedby/career-os/internal/publisher"
	"github.com/blockedby/career-os/internal/tasks"
)

// Mock implementations for testing

type mockTaskGenerator struct {
	result *tasks.Result
	last   *tasks.Request
}

func (m *mockTaskGenerator) Generate(ctx context.Context, req *tasks.Request) *tasks.Result {
	m.last = req
	if m.result != nil {
		return m.result
	}
	return &tasks.Result{
		Tasks:  []string{req.Prompt + " - Research phase"},
		Source: tasks.SourceFallback,
	}
}

type mockLeadPublisher struct {
	events []publisher.LeadCapturedEvent
	err    error
}

func (m *mockLeadPublisher) PublishLeadCaptured(ctx context.Context, event publisher.LeadCapturedEvent) error {
	m.events = append(m.events, event)
	return m.err
}

func newTestServer(pub LeadPublisher) *Server {
	cfg := &Config{
		Port:        3100,
		Title:       "Test API",
		Description: "Test",
		Version:     "1.0.0",
	}
	h := NewHandler(&mockTaskGenerator{}, pub, nil, 0)
	return NewServer(cfg, h)
}

func postJSON(t *testing.T, srv *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.fuego.Mux.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(nil)
	if srv == nil {
		t.Fatal("expected server to be created")
	}
	if srv.fuego == nil {
		t.Fatal("expected fuego server to be initialized")
	}
}

func TestServerStop(t *testing.T) {
	srv := newTestServer(nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.fuego.Mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	decodeBody(t, w, &resp)

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got '%s'", resp["status"])
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	pub := &mockLeadPublisher{}
	srv := newTestServer(pub)

	w := postJSON(t, srv, "/api/v1/analyze", map[string]string{
		"name":              "Dana",
		"email":             "dana@example.com",
		"currentRole":       "QA Engineer",
		"targetRole":        "Backend Engineer",
		"yearsOfExperience": "4",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	decodeBody(t, w, &resp)

	score, ok := resp["jobReadinessScore"].(float64)
	if !ok {
		t.Fatal("expected jobReadinessScore in response")
	}
	if score != 60 {
		t.Errorf("expected readiness score 60, got %v", score)
	}
	if resp["summary"] == "" {
		t.Error("expected non-empty summary")
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected 1 published lead, got %d", len(pub.events))
	}
	if pub.events[0].Email != "dana@example.com" {
		t.Errorf("unexpected lead email: %s", pub.events[0].Email)
	}
	if pub.events[0].ReadinessScore != 60 {
		t.Errorf("unexpected lead score: %d", pub.events[0].ReadinessScore)
	}
}

func TestAnalyzeEndpointMissingFields(t *testing.T) {
	pub := &mockLeadPublisher{}
	srv := newTestServer(pub)

	w := postJSON(t, srv, "/api/v1/analyze", map[string]string{
		"name":  "Dana",
		"email": "dana@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	decodeBody(t, w, &resp)

	if resp["error"] != "Missing required fields" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
	if len(pub.events) != 0 {
		t.Error("rejected request must not publish a lead")
	}
}

func TestAnalyzeEndpointMalformedBody(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.fuego.Mux.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	var resp map[string]string
	decodeBody(t, w, &resp)

	if resp["error"] != "An unexpected error occurred. Please try again later." {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestAnalyzeEndpointBroadcastsEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 256)}
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	cfg := &Config{Port: 3100, Title: "Test API", Description: "Test", Version: "1.0.0"}
	h := NewHandler(&mockTaskGenerator{}, nil, hub, 0)
	srv := NewServer(cfg, h)

	w := postJSON(t, srv, "/api/v1/analyze", map[string]string{
		"name":        "Dana",
		"email":       "dana@example.com",
		"currentRole": "QA Engineer",
		"targetRole":  "Backend Engineer",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	want := []string{EventLeadCaptured, EventReportGenerated}
	for _, eventType := range want {
		select {
		case data := <-client.send:
			var evt WSEvent
			if err := json.Unmarshal(data, &evt); err != nil {
				t.Fatalf("decode event: %v", err)
			}
			if evt.Type != eventType {
				t.Errorf("expected event %q, got %q", eventType, evt.Type)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("did not receive %q event", eventType)
		}
	}
}

func TestAnalyzeEndpointPublisherFailureIsNotFatal(t *testing.T) {
	pub := &mockLeadPublisher{err: context.DeadlineExceeded}
	srv := newTestServer(pub)

	w := postJSON(t, srv, "/api/v1/analyze", map[string]string{
		"name":        "Dana",
		"email":       "dana@example.com",
		"currentRole": "QA Engineer",
		"targetRole":  "Backend Engineer",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 despite publish failure, got %d", w.Code)
	}
}

func TestAnalyzeResumeEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	resumeText := "Worked as a backend developer with 6 years of experience building Python services."
	w := postJSON(t, srv, "/api/v1/analyze-resume", map[string]string{
		"resumeText": resumeText,
		"targetRole": "Staff Engineer",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	decodeBody(t, w, &resp)

	if _, ok := resp["overallScore"].(float64); !ok {
		t.Fatal("expected overallScore in response")
	}
	if _, ok := resp["atsOptimization"]; !ok {
		t.Error("expected atsOptimization in response")
	}
}

func TestAnalyzeResumeEndpointTooShort(t *testing.T) {
	srv := newTestServer(nil)

	w := postJSON(t, srv, "/api/v1/analyze-resume", map[string]string{
		"resumeText": "too short",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	decodeBody(t, w, &resp)

	if resp["error"] != "Resume text is required and must be at least 50 characters" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestAnalyzeResumeEndpointMalformedBody(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-resume", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.fuego.Mux.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	var resp map[string]string
	decodeBody(t, w, &resp)

	if resp["error"] != "An unexpected error occurred" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestJobRecommendationsEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	w := postJSON(t, srv, "/api/v1/job-recommendations", map[string]string{
		"resumeText": strings.Repeat("react and node experience building interfaces. ", 3),
		"skills":     "React, Node",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		RecommendedJobs []struct {
			ID         string `json:"id"`
			MatchScore int    `json:"matchScore"`
		} `json:"recommendedJobs"`
		Note string `json:"note"`
	}
	decodeBody(t, w, &resp)

	if len(resp.RecommendedJobs) != 8 {
		t.Fatalf("expected 8 recommendations, got %d", len(resp.RecommendedJobs))
	}
	for i := 1; i < len(resp.RecommendedJobs); i++ {
		if resp.RecommendedJobs[i].MatchScore > resp.RecommendedJobs[i-1].MatchScore {
			t.Fatal("recommendations must be sorted by score descending")
		}
	}
	if resp.Note == "" {
		t.Error("expected catalog note in response")
	}
}

func TestJobRecommendationsEndpointMissingResume(t *testing.T) {
	srv := newTestServer(nil)

	w := postJSON(t, srv, "/api/v1/job-recommendations", map[string]string{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	decodeBody(t, w, &resp)

	if resp["error"] != "Resume text is required for job matching" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestGenerateTasksEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	w := postJSON(t, srv, "/api/v1/generate-tasks", map[string]interface{}{
		"prompt":        "Launch portfolio site",
		"existingTasks": []string{"Buy domain"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Tasks []string `json:"tasks"`
	}
	decodeBody(t, w, &resp)

	if len(resp.Tasks) == 0 {
		t.Fatal("expected at least one task")
	}
	if !strings.Contains(resp.Tasks[0], "Launch portfolio site") {
		t.Errorf("task should carry the prompt, got %q", resp.Tasks[0])
	}
}

func TestGenerateTasksEndpointMalformedBody(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-tasks", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.fuego.Mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("task generation must not fail on bad input, got %d", w.Code)
	}

	var resp struct {
		Tasks []string `json:"tasks"`
	}
	decodeBody(t, w, &resp)

	if len(resp.Tasks) == 0 {
		t.Fatal("expected fallback tasks")
	}
}

func TestValidateIntakeEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	w := postJSON(t, srv, "/api/v1/intake/validate", map[string]interface{}{
		"step":  1,
		"name":  "Dana",
		"email": "not-an-email",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp validateIntakeResponse
	decodeBody(t, w, &resp)

	if resp.Valid {
		t.Error("expected invalid result")
	}
	if resp.Errors["email"] != "Please enter a valid email address" {
		t.Errorf("unexpected email error: %q", resp.Errors["email"])
	}
}

func TestValidateIntakeEndpointUnknownStep(t *testing.T) {
	srv := newTestServer(nil)

	w := postJSON(t, srv, "/api/v1/intake/validate", map[string]interface{}{
		"step": 7,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestUploadResumeEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	content := "Senior engineer with a decade of experience shipping distributed systems."
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.fuego.Mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	decodeBody(t, w, &resp)

	if resp["resumeText"] != content {
		t.Errorf("unexpected extracted text: %q", resp["resumeText"])
	}
}

func TestUploadResumeEndpointRejectsPDF(t *testing.T) {
	srv := newTestServer(nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "resume.pdf")
	_, _ = part.Write([]byte("%PDF-1.4 fake"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.fuego.Mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	decodeBody(t, w, &resp)

	if !strings.Contains(resp["error"], "PDF parsing requires additional setup") {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestUploadResumeEndpointNoFile(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()
	srv.fuego.Mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
