package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const appointmentColumns = `a.id, a.company_id, a.appointment_date, a.appointment_time, a.client_name, a.client_phone, a.status`

const sqlListAppointmentsBetween = `
SELECT ` + appointmentColumns + `
FROM appointments a
WHERE a.appointment_date BETWEEN $1::date AND $2::date
  AND a.status <> 'cancelled'
ORDER BY a.appointment_date ASC, a.appointment_time ASC
`

// ListAppointmentsBetween retrieves non-cancelled appointments whose date falls
// between the calendar days of from and to (inclusive). Times are compared by
// the caller, which knows the company time zone.
func (s *Store) ListAppointmentsBetween(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	var appointments []Appointment
	err := s.db.SelectContext(ctx, &appointments, sqlListAppointmentsBetween,
		from.Format(time.DateOnly), to.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

const sqlGetAppointmentByID = `
SELECT ` + appointmentColumns + `
FROM appointments a
WHERE a.id = $1
`

// GetAppointmentByID retrieves an appointment by ID
func (s *Store) GetAppointmentByID(ctx context.Context, appointmentID int64) (Appointment, error) {
	var appointment Appointment
	err := s.db.GetContext(ctx, &appointment, sqlGetAppointmentByID, appointmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Appointment{}, ErrNotFound
		}
		return Appointment{}, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

const sqlGetAppointmentDetails = `
SELECT ` + appointmentColumns + `,
       c.name AS company_name,
       sv.name AS service_name,
       p.name AS professional_name
FROM appointments a
JOIN companies c ON c.id = a.company_id
LEFT JOIN services sv ON sv.id = a.service_id
LEFT JOIN professionals p ON p.id = a.professional_id
WHERE a.id = $1
`

// GetAppointmentDetails retrieves an appointment with its company, service and professional names
func (s *Store) GetAppointmentDetails(ctx context.Context, appointmentID int64) (AppointmentDetails, error) {
	var details AppointmentDetails
	err := s.db.GetContext(ctx, &details, sqlGetAppointmentDetails, appointmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AppointmentDetails{}, ErrNotFound
		}
		return AppointmentDetails{}, fmt.Errorf("failed to get appointment details: %w", err)
	}
	return details, nil
}
