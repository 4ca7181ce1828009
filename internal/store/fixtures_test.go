package store

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// The messaging subsystem never creates these rows itself, so the
// factories use raw SQL.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

func (f *Fixtures) CreateCompany(name string) int64 {
	f.t.Helper()
	var id int64
	err := f.testDB.db.GetContext(f.ctx, &id, `INSERT INTO companies (name) VALUES ($1) RETURNING id`, name)
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) CreateClient(companyID int64, name string, phone *string) int64 {
	f.t.Helper()
	var id int64
	err := f.testDB.db.GetContext(f.ctx, &id,
		`INSERT INTO clients (company_id, name, phone) VALUES ($1, $2, $3) RETURNING id`,
		companyID, name, phone)
	require.NoError(f.t, err)
	return id
}

// CampaignOpts customizes campaign creation.
type CampaignOpts struct {
	Name            string
	Message         string
	ScheduledDate   time.Time
	Status          string
	TargetType      string
	SelectedClients []int64
}

func (f *Fixtures) CreateCampaign(companyID int64, opts ...func(*CampaignOpts)) int64 {
	f.t.Helper()
	o := CampaignOpts{
		Name:          "Promo",
		Message:       "Olá {cliente}!",
		ScheduledDate: time.Now().Add(-time.Minute),
		Status:        CampaignStatusPending,
		TargetType:    CampaignTargetAll,
	}
	for _, fn := range opts {
		fn(&o)
	}

	var selected interface{}
	if o.SelectedClients != nil {
		selected = pq.Array(o.SelectedClients)
	}

	var id int64
	err := f.testDB.db.GetContext(f.ctx, &id, `
		INSERT INTO campaigns (company_id, name, message, scheduled_date, status, target_type, selected_clients)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		companyID, o.Name, o.Message, o.ScheduledDate, o.Status, o.TargetType, selected)
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) CreateService(companyID int64, name string) int64 {
	f.t.Helper()
	var id int64
	err := f.testDB.db.GetContext(f.ctx, &id,
		`INSERT INTO services (company_id, name) VALUES ($1, $2) RETURNING id`, companyID, name)
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) CreateProfessional(companyID int64, name string) int64 {
	f.t.Helper()
	var id int64
	err := f.testDB.db.GetContext(f.ctx, &id,
		`INSERT INTO professionals (company_id, name) VALUES ($1, $2) RETURNING id`, companyID, name)
	require.NoError(f.t, err)
	return id
}

// AppointmentOpts customizes appointment creation.
type AppointmentOpts struct {
	Date           string
	Time           string
	ClientName     string
	ClientPhone    *string
	Status         string
	ServiceID      *int64
	ProfessionalID *int64
}

func (f *Fixtures) CreateAppointment(companyID int64, opts ...func(*AppointmentOpts)) int64 {
	f.t.Helper()
	phone := "11999998888"
	o := AppointmentOpts{
		Date:        time.Now().Format(time.DateOnly),
		Time:        "14:30",
		ClientName:  "Maria",
		ClientPhone: &phone,
		Status:      "scheduled",
	}
	for _, fn := range opts {
		fn(&o)
	}

	var id int64
	err := f.testDB.db.GetContext(f.ctx, &id, `
		INSERT INTO appointments (company_id, service_id, professional_id, appointment_date, appointment_time, client_name, client_phone, status)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8)
		RETURNING id`,
		companyID, o.ServiceID, o.ProfessionalID, o.Date, o.Time, o.ClientName, o.ClientPhone, o.Status)
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) CreateWhatsAppInstance(companyID int64, name, status string) int64 {
	f.t.Helper()
	var id int64
	err := f.testDB.db.GetContext(f.ctx, &id,
		`INSERT INTO whatsapp_instances (company_id, instance_name, status) VALUES ($1, $2, $3) RETURNING id`,
		companyID, name, status)
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) CreateReminderSetting(companyID int64, reminderType, template string, active bool) int64 {
	f.t.Helper()
	var id int64
	err := f.testDB.db.GetContext(f.ctx, &id, `
		INSERT INTO reminder_settings (company_id, reminder_type, message_template, is_active)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		companyID, reminderType, template, active)
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) SetGlobalSetting(key, value string) {
	f.t.Helper()
	_, err := f.testDB.db.ExecContext(f.ctx, `
		INSERT INTO global_settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	require.NoError(f.t, err)
}

func strPtr(s string) *string {
	return &s
}
