package store

// Campaign ENUMs
const (
	CampaignStatusPending   = "pending"
	CampaignStatusSending   = "sending"
	CampaignStatusCompleted = "completed"
	CampaignStatusFailed    = "failed"
)

const (
	CampaignTargetAll      = "all"
	CampaignTargetSpecific = "specific"
)

// Appointment ENUMs
const (
	AppointmentStatusCancelled = "cancelled"
)

// WhatsApp instance ENUMs
const (
	WhatsAppInstanceStatusConnected = "connected"
)

// Reminder ENUMs
const (
	ReminderType24h          = "24h"
	ReminderType1h           = "1h"
	ReminderTypeConfirmation = "confirmation"
)

// Delivery history ENUMs
const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// Global settings keys
const (
	SettingEvolutionAPIURL = "evolution_api_url"
	SettingEvolutionAPIKey = "evolution_api_key"
)
