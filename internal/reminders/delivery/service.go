package delivery

import (
	"agenda-server/internal/events"
	"agenda-server/internal/messaging"
	"agenda-server/internal/metrics"
	"agenda-server/internal/observability"
	"agenda-server/internal/store"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrSkipped marks deliveries that were not attempted because data or
	// configuration is missing. It is wrapped with the reason.
	ErrSkipped          = errors.New("delivery skipped")
	ErrTemplateNotFound = errors.New("no active template for reminder type")
	ErrSendFailed       = errors.New("failed to send message")
)

// Config holds locale settings used to render messages
type Config struct {
	Location    *time.Location
	CountryCode string
}

// Service renders and sends reminder and confirmation messages
type Service struct {
	store     DeliveryStore
	routes    RouteResolver
	sender    messaging.Sender
	publisher EventPublisher
	config    Config
	logger    *observability.Logger
}

// New creates a new delivery service
func New(store DeliveryStore, routes RouteResolver, sender messaging.Sender, publisher EventPublisher, config Config, logger *observability.Logger) *Service {
	if config.Location == nil {
		config.Location = time.UTC
	}
	if config.CountryCode == "" {
		config.CountryCode = messaging.DefaultCountryCode
	}
	return &Service{
		store:     store,
		routes:    routes,
		sender:    sender,
		publisher: publisher,
		config:    config,
		logger:    logger,
	}
}

// SendReminder delivers the reminderType reminder planned for scheduledFor.
// A reminder already delivered for the same instant is skipped.
func (s *Service) SendReminder(ctx context.Context, appointmentID int64, reminderType string, scheduledFor time.Time) error {
	return s.deliver(ctx, appointmentID, reminderType, &scheduledFor)
}

// SendConfirmation delivers the booking confirmation message
func (s *Service) SendConfirmation(ctx context.Context, appointmentID int64) error {
	return s.deliver(ctx, appointmentID, store.ReminderTypeConfirmation, nil)
}

func (s *Service) deliver(ctx context.Context, appointmentID int64, reminderType string, scheduledFor *time.Time) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "appointment_id", Value: appointmentID},
		observability.Field{Key: "reminder_type", Value: reminderType},
	)

	details, err := s.store.GetAppointmentDetails(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.skip(reminderType, fmt.Errorf("%w: appointment %d not found", ErrSkipped, appointmentID))
		}
		return fmt.Errorf("failed to load appointment: %w", err)
	}
	if details.Status == store.AppointmentStatusCancelled {
		return s.skip(reminderType, fmt.Errorf("%w: appointment is cancelled", ErrSkipped))
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: details.CompanyID})

	if scheduledFor != nil {
		sent, err := s.store.HasSentReminder(ctx, appointmentID, reminderType, *scheduledFor)
		if err != nil {
			return fmt.Errorf("failed to check reminder history: %w", err)
		}
		if sent {
			return s.skip(reminderType, fmt.Errorf("%w: reminder already sent", ErrSkipped))
		}
	}

	setting, err := s.store.GetActiveReminderSetting(ctx, details.CompanyID, reminderType)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.skip(reminderType, fmt.Errorf("%w: %w", ErrSkipped, ErrTemplateNotFound))
		}
		return fmt.Errorf("failed to load reminder template: %w", err)
	}

	if details.ClientPhone == nil || strings.TrimSpace(*details.ClientPhone) == "" {
		return s.skip(reminderType, fmt.Errorf("%w: appointment has no client phone", ErrSkipped))
	}
	phone := messaging.FormatPhone(*details.ClientPhone, s.config.CountryCode)

	route, err := s.routes.Resolve(ctx, details.CompanyID)
	if err != nil {
		if errors.Is(err, messaging.ErrNoActiveInstance) || errors.Is(err, messaging.ErrMissingCredentials) {
			return s.skip(reminderType, fmt.Errorf("%w: %w", ErrSkipped, err))
		}
		return fmt.Errorf("failed to resolve gateway route: %w", err)
	}

	startsAt, err := details.StartsAt(s.config.Location)
	if err != nil {
		return s.skip(reminderType, fmt.Errorf("%w: %w", ErrSkipped, err))
	}

	message := messaging.AppointmentMessage(setting.MessageTemplate, messaging.AppointmentValues{
		ClientName:       details.ClientName,
		CompanyName:      details.CompanyName,
		ServiceName:      deref(details.ServiceName),
		ProfessionalName: deref(details.ProfessionalName),
		At:               startsAt,
	})

	sendErr := s.sender.SendText(ctx, route, phone, message)

	params := store.CreateReminderHistoryParams{
		CompanyID:     details.CompanyID,
		AppointmentID: appointmentID,
		ReminderType:  reminderType,
		ScheduledFor:  scheduledFor,
		Phone:         phone,
		Message:       message,
		Status:        store.DeliveryStatusSent,
	}
	if sendErr != nil {
		errMsg := sendErr.Error()
		params.Status = store.DeliveryStatusFailed
		params.ErrorMessage = &errMsg
	}

	if _, err := s.store.CreateReminderHistory(ctx, params); err != nil {
		s.logger.Error(ctx, "failed to record reminder history", err)
	}

	metrics.RecordReminder(reminderType, params.Status)

	event := events.ReminderDelivered{
		AppointmentID: appointmentID,
		CompanyID:     details.CompanyID,
		ReminderType:  reminderType,
		ScheduledFor:  scheduledFor,
		Sent:          sendErr == nil,
	}
	if params.ErrorMessage != nil {
		event.Error = *params.ErrorMessage
	}
	if err := s.publisher.PublishReminderDelivered(ctx, event); err != nil {
		s.logger.Warn(ctx, fmt.Sprintf("failed to publish reminder event: %v", err))
	}

	if sendErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrSendFailed, reminderType, sendErr)
	}

	s.logger.Info(ctx, fmt.Sprintf("%s message sent", reminderType))
	return nil
}

func (s *Service) skip(reminderType string, err error) error {
	metrics.RecordReminder(reminderType, "skipped")
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
