package api

import (
	"encoding/json"
	"time"
)

// Event types pushed to WebSocket subscribers.
const (
	EventLeadCaptured    = "lead.captured"
	EventReportGenerated = "report.generated"
	EventResumeAnalyzed  = "resume.analyzed"
	EventJobsMatched     = "jobs.matched"
	EventTasksGenerated  = "tasks.generated"
)

// WSEvent is the envelope for every message sent over /ws.
type WSEvent struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

func newEvent(eventType string, payload interface{}) []byte {
	evt := WSEvent{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return nil
	}
	return data
}
