package store

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Campaign is a bulk WhatsApp message scheduled for a company's clients
type Campaign struct {
	ID            int64     `db:"id" json:"id"`
	CompanyID     int64     `db:"company_id" json:"company_id"`
	Name          string    `db:"name" json:"name"`
	Message       string    `db:"message" json:"message"`
	ScheduledDate time.Time `db:"scheduled_date" json:"scheduled_date"`
	Status        string    `db:"status" json:"status"`
	TargetType    string    `db:"target_type" json:"target_type"`

	// SelectedClients is NULL unless TargetType is specific
	SelectedClients pq.Int64Array `db:"selected_clients" json:"selected_clients"`

	SentCount    int       `db:"sent_count" json:"sent_count"`
	TotalTargets int       `db:"total_targets" json:"total_targets"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Client is a customer of a company
type Client struct {
	ID        int64   `db:"id" json:"id"`
	CompanyID int64   `db:"company_id" json:"company_id"`
	Name      string  `db:"name" json:"name"`
	Phone     *string `db:"phone" json:"phone,omitempty"`
}

// Appointment is the subset of a booking the reminder scheduler reads
type Appointment struct {
	ID              int64     `db:"id" json:"id"`
	CompanyID       int64     `db:"company_id" json:"company_id"`
	AppointmentDate time.Time `db:"appointment_date" json:"appointment_date"`
	AppointmentTime string    `db:"appointment_time" json:"appointment_time"`
	ClientName      string    `db:"client_name" json:"client_name"`
	ClientPhone     *string   `db:"client_phone" json:"client_phone,omitempty"`
	Status          string    `db:"status" json:"status"`
}

// StartsAt combines the appointment's calendar date and wall clock time in loc.
// Times are stored as HH:MM or HH:MM:SS.
func (a Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	var hour, minute, second int
	if _, err := fmt.Sscanf(a.AppointmentTime, "%d:%d:%d", &hour, &minute, &second); err != nil {
		second = 0
		if _, err := fmt.Sscanf(a.AppointmentTime, "%d:%d", &hour, &minute); err != nil {
			return time.Time{}, fmt.Errorf("invalid appointment time %q: %w", a.AppointmentTime, err)
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return time.Time{}, fmt.Errorf("invalid appointment time %q", a.AppointmentTime)
	}
	y, m, d := a.AppointmentDate.Date()
	return time.Date(y, m, d, hour, minute, second, 0, loc), nil
}

// AppointmentDetails joins an appointment with the names its templates render
type AppointmentDetails struct {
	Appointment
	CompanyName      string  `db:"company_name" json:"company_name"`
	ServiceName      *string `db:"service_name" json:"service_name,omitempty"`
	ProfessionalName *string `db:"professional_name" json:"professional_name,omitempty"`
}

// WhatsAppInstance is a company's session on the messaging gateway
type WhatsAppInstance struct {
	ID           int64     `db:"id" json:"id"`
	CompanyID    int64     `db:"company_id" json:"company_id"`
	InstanceName string    `db:"instance_name" json:"instance_name"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ReminderSetting is a company's message template for a reminder type
type ReminderSetting struct {
	ID              int64  `db:"id" json:"id"`
	CompanyID       int64  `db:"company_id" json:"company_id"`
	ReminderType    string `db:"reminder_type" json:"reminder_type"`
	MessageTemplate string `db:"message_template" json:"message_template"`
	IsActive        bool   `db:"is_active" json:"is_active"`
}

// GatewayCredentials are the global Evolution API settings
type GatewayCredentials struct {
	BaseURL string
	APIKey  string
}

// ReminderHistory records one reminder delivery attempt
type ReminderHistory struct {
	ID            int64      `db:"id" json:"id"`
	CompanyID     int64      `db:"company_id" json:"company_id"`
	AppointmentID int64      `db:"appointment_id" json:"appointment_id"`
	ReminderType  string     `db:"reminder_type" json:"reminder_type"`
	ScheduledFor  *time.Time `db:"scheduled_for" json:"scheduled_for,omitempty"`
	Phone         string     `db:"phone" json:"phone"`
	Message       string     `db:"message" json:"message"`
	Status        string     `db:"status" json:"status"`
	ErrorMessage  *string    `db:"error_message" json:"error_message,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// CampaignHistory records one campaign send attempt
type CampaignHistory struct {
	ID           int64     `db:"id" json:"id"`
	CampaignID   int64     `db:"campaign_id" json:"campaign_id"`
	CompanyID    int64     `db:"company_id" json:"company_id"`
	ClientID     int64     `db:"client_id" json:"client_id"`
	Phone        string    `db:"phone" json:"phone"`
	Message      string    `db:"message" json:"message"`
	Status       string    `db:"status" json:"status"`
	ErrorMessage *string   `db:"error_message" json:"error_message,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
