package delivery

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=delivery

import (
	"agenda-server/internal/events"
	"agenda-server/internal/messaging"
	"agenda-server/internal/store"
	"context"
	"time"
)

// DeliveryStore is the persistence the delivery service reads and writes
type DeliveryStore interface {
	GetAppointmentDetails(ctx context.Context, appointmentID int64) (store.AppointmentDetails, error)
	GetActiveReminderSetting(ctx context.Context, companyID int64, reminderType string) (store.ReminderSetting, error)
	HasSentReminder(ctx context.Context, appointmentID int64, reminderType string, scheduledFor time.Time) (bool, error)
	CreateReminderHistory(ctx context.Context, params store.CreateReminderHistoryParams) (store.ReminderHistory, error)
}

// RouteResolver finds the gateway route for a company
type RouteResolver interface {
	Resolve(ctx context.Context, companyID int64) (messaging.Route, error)
}

// EventPublisher publishes reminder outcomes
type EventPublisher interface {
	PublishReminderDelivered(ctx context.Context, d events.ReminderDelivered) error
}
