package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CampaignsFinished counts campaigns by terminal status
	CampaignsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messaging_campaigns_finished_total",
			Help: "Campaigns that reached a terminal status",
		},
		[]string{"status"}, // completed or failed
	)

	// CampaignMessages counts campaign send attempts
	CampaignMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messaging_campaign_messages_total",
			Help: "Campaign message send attempts",
		},
		[]string{"status"}, // sent or failed
	)

	// CampaignTickDuration tracks how long one campaign tick takes
	CampaignTickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "messaging_campaign_tick_duration_seconds",
			Help:    "Duration of a campaign scheduler tick in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	// RemindersDelivered counts reminder and confirmation outcomes
	RemindersDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messaging_reminders_total",
			Help: "Reminder and confirmation delivery outcomes",
		},
		[]string{"type", "status"}, // status is sent, failed or skipped
	)

	// RemindersPending is the number of armed reminder timers
	RemindersPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "messaging_reminders_pending",
			Help: "Reminder timers currently armed in this process",
		},
	)

	// GatewayRequestDuration tracks the latency of gateway sends
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "messaging_gateway_request_duration_seconds",
			Help: "Duration of messaging gateway requests in seconds",
			Buckets: []float64{
				0.05, // 50ms
				0.1,  // 100ms
				0.25, // 250ms
				0.5,  // 500ms
				1.0,  // 1s
				2.5,  // 2.5s
				5.0,  // 5s
				10.0, // 10s
				30.0, // 30s
			},
		},
		[]string{"status"}, // success or failure
	)
)

// RecordCampaignFinished records a campaign reaching status
func RecordCampaignFinished(status string) {
	CampaignsFinished.WithLabelValues(status).Inc()
}

// RecordCampaignMessage records one campaign send attempt
func RecordCampaignMessage(status string) {
	CampaignMessages.WithLabelValues(status).Inc()
}

// RecordCampaignTick records the duration of a campaign tick
func RecordCampaignTick(seconds float64) {
	CampaignTickDuration.Observe(seconds)
}

// RecordReminder records a reminder outcome
func RecordReminder(reminderType, status string) {
	RemindersDelivered.WithLabelValues(reminderType, status).Inc()
}

// SetRemindersPending sets the number of armed timers
func SetRemindersPending(n int) {
	RemindersPending.Set(float64(n))
}

// RecordGatewayRequest records the duration of a gateway send
func RecordGatewayRequest(status string, seconds float64) {
	GatewayRequestDuration.WithLabelValues(status).Observe(seconds)
}
