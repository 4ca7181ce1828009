package scheduler

import (
	"agenda-server/internal/metrics"
	"agenda-server/internal/observability"
	"agenda-server/internal/reminders/delivery"
	"agenda-server/internal/store"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrAppointmentNotFound is returned when rescheduling an unknown appointment
var ErrAppointmentNotFound = errors.New("appointment not found")

// cancelMarkTTL bounds how long an explicit cancellation keeps scans from re-arming a key
const cancelMarkTTL = 7 * 24 * time.Hour

// leaseTTL outlives the gateway timeout so a slow send keeps its lease
const leaseTTL = 10 * time.Minute

// ReminderType identifies which reminder of an appointment a timer sends
type ReminderType string

const (
	Reminder24h ReminderType = store.ReminderType24h
	Reminder1h  ReminderType = store.ReminderType1h
)

// Types lists reminder types in the order they fire
var Types = []ReminderType{Reminder24h, Reminder1h}

// Offset is how long before the appointment the reminder is sent
func (t ReminderType) Offset() time.Duration {
	switch t {
	case Reminder24h:
		return 24 * time.Hour
	case Reminder1h:
		return time.Hour
	default:
		return 0
	}
}

// ReminderKey identifies one reminder of one appointment
type ReminderKey struct {
	AppointmentID int64
	Type          ReminderType
}

// PendingReminder is an armed timer
type PendingReminder struct {
	AppointmentID int64        `json:"appointment_id"`
	Type          ReminderType `json:"reminder_type"`
	At            time.Time    `json:"scheduled_for"`
}

type scheduledReminder struct {
	key   ReminderKey
	at    time.Time
	timer *time.Timer
}

// Config controls scan cadence and windows
type Config struct {
	ScanInterval time.Duration
	Lookahead    time.Duration
	Horizon      time.Duration
	Location     *time.Location

	// Lease is optional. Without it only the sent history guards
	// against two replicas firing the same reminder.
	Lease Lease
}

// Scheduler arms in-process timers that send appointment reminders. A
// periodic scan arms reminders due within the horizon, and the booking
// workflow cancels or reschedules them when appointments change.
type Scheduler struct {
	store     AppointmentStore
	deliverer Deliverer
	config    Config
	logger    *observability.Logger
	now       func() time.Time

	mu        sync.Mutex
	timers    map[ReminderKey]*scheduledReminder
	cancelled map[ReminderKey]time.Time
	running   bool
	stop      chan struct{}
	wg        sync.WaitGroup
	inflight  sync.WaitGroup
}

// New creates a new reminder scheduler
func New(store AppointmentStore, deliverer Deliverer, config Config, logger *observability.Logger) *Scheduler {
	if config.ScanInterval <= 0 {
		config.ScanInterval = 5 * time.Minute
	}
	if config.Lookahead <= 0 {
		config.Lookahead = 25 * time.Hour
	}
	if config.Horizon <= 0 {
		config.Horizon = 2 * time.Hour
	}
	if config.Location == nil {
		config.Location = time.UTC
	}
	return &Scheduler{
		store:     store,
		deliverer: deliverer,
		config:    config,
		logger:    logger,
		now:       time.Now,
		timers:    make(map[ReminderKey]*scheduledReminder),
		cancelled: make(map[ReminderKey]time.Time),
	}
}

// Start runs a scan immediately and then every scan interval. Calling
// Start on a running scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})

	ctx = observability.WithFields(context.WithoutCancel(ctx),
		observability.Field{Key: "worker", Value: "reminder_scheduler"},
	)
	stop := s.stop

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Info(ctx, fmt.Sprintf("reminder scheduler started, scanning every %s", s.config.ScanInterval))

		s.runScan(ctx)

		ticker := time.NewTicker(s.config.ScanInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				s.logger.Info(ctx, "reminder scheduler stopped")
				return
			case <-ticker.C:
				s.runScan(ctx)
			}
		}
	}()
}

// Stop halts the scan loop, disarms every pending timer and waits for
// reminders already being delivered.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	for key, entry := range s.timers {
		entry.timer.Stop()
		delete(s.timers, key)
	}
	s.mu.Unlock()
	metrics.SetRemindersPending(0)

	s.inflight.Wait()
}

// IsRunning reports whether the scan loop is active
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) runScan(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "reminder scan panicked", fmt.Errorf("panic: %v", r))
		}
	}()
	if err := s.Scan(ctx); err != nil {
		s.logger.Error(ctx, "reminder scan failed", err)
	}
}

// Scan arms the reminders of upcoming appointments that fall within the
// horizon and are neither cancelled nor already delivered.
func (s *Scheduler) Scan(ctx context.Context) error {
	now := s.now()
	horizon := now.Add(s.config.Horizon)

	s.pruneCancelled(now)

	appointments, err := s.store.ListAppointmentsBetween(ctx,
		now.In(s.config.Location), now.Add(s.config.Lookahead).In(s.config.Location))
	if err != nil {
		return fmt.Errorf("failed to list upcoming appointments: %w", err)
	}

	armed := 0
	for _, appointment := range appointments {
		apptCtx := observability.WithFields(ctx, observability.Field{Key: "appointment_id", Value: appointment.ID})

		if appointment.Status == store.AppointmentStatusCancelled {
			continue
		}

		startsAt, err := appointment.StartsAt(s.config.Location)
		if err != nil {
			s.logger.Warn(apptCtx, fmt.Sprintf("skipping appointment with invalid time: %v", err))
			continue
		}
		if !startsAt.After(now) {
			continue
		}

		for _, reminderType := range Types {
			at := startsAt.Add(-reminderType.Offset())
			if !at.After(now) || at.After(horizon) {
				continue
			}

			key := ReminderKey{AppointmentID: appointment.ID, Type: reminderType}
			if s.isArmedOrCancelled(key) {
				continue
			}

			sent, err := s.store.HasSentReminder(apptCtx, appointment.ID, string(reminderType), at)
			if err != nil {
				s.logger.Error(apptCtx, "failed to check reminder history", err)
				continue
			}
			if sent {
				continue
			}

			if s.arm(ctx, key, at) {
				armed++
			}
		}
	}

	s.logger.Debug(ctx, fmt.Sprintf("reminder scan found %d appointments, armed %d reminders", len(appointments), armed))
	return nil
}

// ScheduleReminder arms a one-shot timer for the reminder. It does nothing
// when the key already has a timer. Instants that are not in the future
// are delivered right away on the calling goroutine.
func (s *Scheduler) ScheduleReminder(ctx context.Context, appointmentID int64, reminderType ReminderType, at time.Time) {
	key := ReminderKey{AppointmentID: appointmentID, Type: reminderType}

	if !at.After(s.now()) {
		s.mu.Lock()
		_, exists := s.timers[key]
		s.mu.Unlock()
		if exists {
			return
		}
		s.deliver(context.WithoutCancel(ctx), key, at)
		return
	}

	s.arm(ctx, key, at)
}

// arm registers a timer for key. It reports false when one already exists
// or the scheduler is stopped.
func (s *Scheduler) arm(ctx context.Context, key ReminderKey, at time.Time) bool {
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		s.logger.Debug(ctx, fmt.Sprintf("scheduler stopped, not arming %s reminder for appointment %d", key.Type, key.AppointmentID))
		return false
	}
	if _, exists := s.timers[key]; exists {
		return false
	}

	entry := &scheduledReminder{key: key, at: at}
	entry.timer = time.AfterFunc(at.Sub(s.now()), func() {
		if !s.track() {
			return
		}
		defer s.inflight.Done()
		s.fire(ctx, entry)
	})
	s.timers[key] = entry
	metrics.SetRemindersPending(len(s.timers))

	s.logger.Debug(observability.WithFields(ctx,
		observability.Field{Key: "appointment_id", Value: key.AppointmentID},
		observability.Field{Key: "reminder_type", Value: string(key.Type)},
	), fmt.Sprintf("reminder armed for %s", at.Format(time.RFC3339)))
	return true
}

// track registers an in-flight delivery unless Stop has begun
func (s *Scheduler) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return false
	}
	s.inflight.Add(1)
	return true
}

func (s *Scheduler) fire(ctx context.Context, entry *scheduledReminder) {
	s.mu.Lock()
	current, ok := s.timers[entry.key]
	s.mu.Unlock()
	if !ok || current != entry {
		return
	}

	defer func() {
		s.mu.Lock()
		if s.timers[entry.key] == entry {
			delete(s.timers, entry.key)
		}
		metrics.SetRemindersPending(len(s.timers))
		s.mu.Unlock()
	}()

	s.deliver(ctx, entry.key, entry.at)
}

func (s *Scheduler) deliver(ctx context.Context, key ReminderKey, at time.Time) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "appointment_id", Value: key.AppointmentID},
		observability.Field{Key: "reminder_type", Value: string(key.Type)},
	)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "reminder delivery panicked", fmt.Errorf("panic: %v", r))
		}
	}()

	lease := leaseKey(key, at)
	leased := false
	if s.config.Lease != nil {
		ok, err := s.config.Lease.Acquire(ctx, lease, leaseTTL)
		switch {
		case err != nil:
			s.logger.Error(ctx, "failed to acquire reminder lease, sending anyway", err)
		case !ok:
			s.logger.Info(ctx, "reminder is held by another instance")
			return
		default:
			leased = true
		}
	}

	err := s.deliverer.SendReminder(ctx, key.AppointmentID, string(key.Type), at)
	switch {
	case err == nil:
	case errors.Is(err, delivery.ErrSkipped):
		s.logger.Info(ctx, fmt.Sprintf("reminder skipped: %v", err))
	default:
		s.logger.Error(ctx, "failed to deliver reminder", err)
		if leased {
			if err := s.config.Lease.Release(ctx, lease); err != nil {
				s.logger.Error(ctx, "failed to release reminder lease", err)
			}
		}
	}
}

func leaseKey(key ReminderKey, at time.Time) string {
	return fmt.Sprintf("reminder:%d:%s:%d", key.AppointmentID, key.Type, at.Unix())
}

// CancelReminder disarms the reminder and keeps later scans from arming it
// again until the appointment is rescheduled.
func (s *Scheduler) CancelReminder(appointmentID int64, reminderType ReminderType) {
	key := ReminderKey{AppointmentID: appointmentID, Type: reminderType}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.timers[key]; ok {
		entry.timer.Stop()
		delete(s.timers, key)
		metrics.SetRemindersPending(len(s.timers))
	}
	s.cancelled[key] = s.now()
}

// CancelAllRemindersForAppointment cancels every reminder type of the appointment
func (s *Scheduler) CancelAllRemindersForAppointment(appointmentID int64) {
	for _, reminderType := range Types {
		s.CancelReminder(appointmentID, reminderType)
	}
}

// RescheduleRemindersForAppointment replaces the appointment's timers with
// ones computed from its current date and time. Every reminder instant
// still in the future is armed, regardless of the scan horizon.
func (s *Scheduler) RescheduleRemindersForAppointment(ctx context.Context, appointmentID int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "appointment_id", Value: appointmentID})

	s.CancelAllRemindersForAppointment(appointmentID)

	s.mu.Lock()
	for _, reminderType := range Types {
		delete(s.cancelled, ReminderKey{AppointmentID: appointmentID, Type: reminderType})
	}
	s.mu.Unlock()

	appointment, err := s.store.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to get appointment: %w", err)
	}
	if appointment.Status == store.AppointmentStatusCancelled {
		return nil
	}

	startsAt, err := appointment.StartsAt(s.config.Location)
	if err != nil {
		return err
	}

	now := s.now()
	if !startsAt.After(now) {
		return nil
	}

	for _, reminderType := range Types {
		at := startsAt.Add(-reminderType.Offset())
		if at.After(now) {
			s.arm(ctx, ReminderKey{AppointmentID: appointmentID, Type: reminderType}, at)
		}
	}

	s.logger.Info(ctx, "appointment reminders rescheduled")
	return nil
}

// Pending returns the armed timers ordered by fire time
func (s *Scheduler) Pending() []PendingReminder {
	s.mu.Lock()
	pending := make([]PendingReminder, 0, len(s.timers))
	for key, entry := range s.timers {
		pending = append(pending, PendingReminder{
			AppointmentID: key.AppointmentID,
			Type:          key.Type,
			At:            entry.at,
		})
	}
	s.mu.Unlock()

	sort.Slice(pending, func(i, j int) bool {
		if pending[i].At.Equal(pending[j].At) {
			return pending[i].AppointmentID < pending[j].AppointmentID
		}
		return pending[i].At.Before(pending[j].At)
	})
	return pending
}

func (s *Scheduler) isArmedOrCancelled(key ReminderKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timers[key]; ok {
		return true
	}
	_, ok := s.cancelled[key]
	return ok
}

func (s *Scheduler) pruneCancelled(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, markedAt := range s.cancelled {
		if now.Sub(markedAt) > cancelMarkTTL {
			delete(s.cancelled, key)
		}
	}
}
