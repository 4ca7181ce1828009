package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	reminderScheduler "agenda-server/internal/reminders/scheduler"
	"agenda-server/internal/store"
)

// ReminderScheduler is the part of the scheduler the booking workflow drives
type ReminderScheduler interface {
	RescheduleRemindersForAppointment(ctx context.Context, appointmentID int64) error
	CancelAllRemindersForAppointment(appointmentID int64)
	Pending() []reminderScheduler.PendingReminder
}

// ConfirmationSender sends booking confirmations
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, appointmentID int64) error
}

// HistoryStore reads recorded reminder deliveries
type HistoryStore interface {
	ListReminderHistory(ctx context.Context, appointmentID int64) ([]store.ReminderHistory, error)
}
