// Package publisher emits lead events to NATS for downstream consumers
// (CRM sync, analytics). Publishing is best-effort: the intake flow never
// fails because the broker is down.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// SubjectLeadCaptured is the subject new leads are published to.
const SubjectLeadCaptured = "leads.captured"

// LeadCapturedEvent is emitted when an intake form produces a report.
type LeadCapturedEvent struct {
	LeadID         uuid.UUID `json:"lead_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CurrentRole    string    `json:"current_role"`
	TargetRole     string    `json:"target_role"`
	ReadinessScore int       `json:"readiness_score"`
	CapturedAt     time.Time `json:"captured_at"`
}

// NATSClient interface to allow mocking
type NATSClient interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes lead events over a nats connection.
type NATSPublisher struct {
	conn NATSClient
}

// NewNATSPublisher creates a new publisher
func NewNATSPublisher(conn *nats.Conn) *NATSPublisher {
	return &NATSPublisher{conn: conn}
}

// PublishLeadCaptured publishes a lead captured event.
func (p *NATSPublisher) PublishLeadCaptured(ctx context.Context, event LeadCapturedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.conn.Publish(SubjectLeadCaptured, data); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}
