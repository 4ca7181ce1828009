package events

import (
	"agenda-server/internal/clients/kafka"
	"agenda-server/internal/observability"
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Event types published on the messaging topic
const (
	TypeCampaignCompleted = "campaign.completed"
	TypeCampaignFailed    = "campaign.failed"
	TypeReminderSent      = "reminder.sent"
	TypeReminderFailed    = "reminder.failed"
)

// EventWriter writes one event to the bus
type EventWriter interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher turns delivery outcomes into domain events. A Publisher
// without a writer drops every event.
type Publisher struct {
	writer EventWriter
	logger *observability.Logger
	now    func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(writer EventWriter, logger *observability.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger,
		now:    time.Now,
	}
}

// NewNoopPublisher creates a publisher used when no broker is configured
func NewNoopPublisher(logger *observability.Logger) *Publisher {
	return NewPublisher(nil, logger)
}

// CampaignFinished describes a campaign that reached a terminal status
type CampaignFinished struct {
	CampaignID   int64
	CompanyID    int64
	Status       string
	SentCount    int
	TotalTargets int
	RunID        string
}

// PublishCampaignFinished publishes campaign.completed or campaign.failed
func (p *Publisher) PublishCampaignFinished(ctx context.Context, f CampaignFinished) error {
	eventType := TypeCampaignFailed
	if f.Status == "completed" {
		eventType = TypeCampaignCompleted
	}

	return p.publish(ctx, eventType, f.CompanyID, map[string]interface{}{
		"campaign_id":   f.CampaignID,
		"status":        f.Status,
		"sent_count":    f.SentCount,
		"total_targets": f.TotalTargets,
		"run_id":        f.RunID,
	})
}

// ReminderDelivered describes one reminder or confirmation attempt
type ReminderDelivered struct {
	AppointmentID int64
	CompanyID     int64
	ReminderType  string
	ScheduledFor  *time.Time
	Sent          bool
	Error         string
}

// PublishReminderDelivered publishes reminder.sent or reminder.failed
func (p *Publisher) PublishReminderDelivered(ctx context.Context, d ReminderDelivered) error {
	eventType := TypeReminderFailed
	if d.Sent {
		eventType = TypeReminderSent
	}

	data := map[string]interface{}{
		"appointment_id": d.AppointmentID,
		"reminder_type":  d.ReminderType,
	}
	if d.ScheduledFor != nil {
		data["scheduled_for"] = d.ScheduledFor.UTC().Format(time.RFC3339)
	}
	if d.Error != "" {
		data["error"] = d.Error
	}

	return p.publish(ctx, eventType, d.CompanyID, data)
}

func (p *Publisher) publish(ctx context.Context, eventType string, companyID int64, data map[string]interface{}) error {
	if p.writer == nil {
		return nil
	}

	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		CompanyID: strconv.FormatInt(companyID, 10),
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	return p.writer.PublishEvent(ctx, event)
}
