package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const sqlGetActiveReminderSetting = `
SELECT id, company_id, reminder_type, message_template, is_active
FROM reminder_settings
WHERE company_id = $1 AND reminder_type = $2 AND is_active = TRUE
ORDER BY id DESC
LIMIT 1
`

// GetActiveReminderSetting retrieves the active template of a company for a reminder type
func (s *Store) GetActiveReminderSetting(ctx context.Context, companyID int64, reminderType string) (ReminderSetting, error) {
	var setting ReminderSetting
	err := s.db.GetContext(ctx, &setting, sqlGetActiveReminderSetting, companyID, reminderType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReminderSetting{}, ErrNotFound
		}
		return ReminderSetting{}, fmt.Errorf("failed to get reminder setting: %w", err)
	}
	return setting, nil
}

// CreateReminderHistoryParams represents parameters for recording a reminder delivery
type CreateReminderHistoryParams struct {
	CompanyID     int64
	AppointmentID int64
	ReminderType  string
	ScheduledFor  *time.Time
	Phone         string
	Message       string
	Status        string
	ErrorMessage  *string
}

const sqlCreateReminderHistory = `
INSERT INTO reminder_history (company_id, appointment_id, reminder_type, scheduled_for, phone, message, status, error_message)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, company_id, appointment_id, reminder_type, scheduled_for, phone, message, status, error_message, created_at
`

// CreateReminderHistory appends a reminder delivery attempt
func (s *Store) CreateReminderHistory(ctx context.Context, params CreateReminderHistoryParams) (ReminderHistory, error) {
	var history ReminderHistory
	err := s.db.GetContext(ctx, &history, sqlCreateReminderHistory,
		params.CompanyID,
		params.AppointmentID,
		params.ReminderType,
		params.ScheduledFor,
		params.Phone,
		params.Message,
		params.Status,
		params.ErrorMessage)
	if err != nil {
		return ReminderHistory{}, fmt.Errorf("failed to create reminder history: %w", err)
	}
	return history, nil
}

const sqlHasSentReminder = `
SELECT EXISTS (
    SELECT 1
    FROM reminder_history
    WHERE appointment_id = $1 AND reminder_type = $2 AND scheduled_for = $3 AND status = 'sent'
)
`

// HasSentReminder reports whether a reminder for this exact instant was already delivered
func (s *Store) HasSentReminder(ctx context.Context, appointmentID int64, reminderType string, scheduledFor time.Time) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlHasSentReminder, appointmentID, reminderType, scheduledFor)
	if err != nil {
		return false, fmt.Errorf("failed to check reminder history: %w", err)
	}
	return exists, nil
}

const sqlListReminderHistory = `
SELECT id, company_id, appointment_id, reminder_type, scheduled_for, phone, message, status, error_message, created_at
FROM reminder_history
WHERE appointment_id = $1
ORDER BY created_at DESC, id DESC
`

// ListReminderHistory retrieves every recorded delivery for an appointment, newest first
func (s *Store) ListReminderHistory(ctx context.Context, appointmentID int64) ([]ReminderHistory, error) {
	var history []ReminderHistory
	err := s.db.SelectContext(ctx, &history, sqlListReminderHistory, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder history: %w", err)
	}
	return history, nil
}
