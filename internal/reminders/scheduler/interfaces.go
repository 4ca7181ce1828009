package scheduler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=scheduler

import (
	"agenda-server/internal/store"
	"context"
	"time"
)

// AppointmentStore is the persistence the reminder scheduler reads
type AppointmentStore interface {
	ListAppointmentsBetween(ctx context.Context, from, to time.Time) ([]store.Appointment, error)
	GetAppointmentByID(ctx context.Context, appointmentID int64) (store.Appointment, error)
	HasSentReminder(ctx context.Context, appointmentID int64, reminderType string, scheduledFor time.Time) (bool, error)
}

// Deliverer sends one reminder
type Deliverer interface {
	SendReminder(ctx context.Context, appointmentID int64, reminderType string, scheduledFor time.Time) error
}

// Lease keeps replicas sharing a database from sending the same reminder
type Lease interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
