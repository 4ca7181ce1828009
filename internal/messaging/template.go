package messaging

import (
	"strings"
	"time"
)

// Placeholders understood by campaign and reminder templates
const (
	PlaceholderClient       = "{cliente}"
	PlaceholderName         = "{nome}"
	PlaceholderCompany      = "{empresa}"
	PlaceholderService      = "{servico}"
	PlaceholderProfessional = "{profissional}"
	PlaceholderDate         = "{data}"
	PlaceholderTime         = "{hora}"
)

// RenderTemplate replaces every placeholder present in values. Unknown
// placeholders are left untouched.
func RenderTemplate(template string, values map[string]string) string {
	if len(values) == 0 {
		return template
	}
	pairs := make([]string, 0, len(values)*2)
	for placeholder, value := range values {
		pairs = append(pairs, placeholder, value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// CampaignMessage personalizes a campaign message for one client
func CampaignMessage(template, clientName string) string {
	return RenderTemplate(template, map[string]string{
		PlaceholderClient: clientName,
		PlaceholderName:   clientName,
	})
}

// AppointmentValues holds the data a reminder or confirmation can mention
type AppointmentValues struct {
	ClientName       string
	CompanyName      string
	ServiceName      string
	ProfessionalName string
	At               time.Time
}

// AppointmentMessage renders a reminder or confirmation template
func AppointmentMessage(template string, v AppointmentValues) string {
	return RenderTemplate(template, map[string]string{
		PlaceholderClient:       v.ClientName,
		PlaceholderCompany:      v.CompanyName,
		PlaceholderService:      v.ServiceName,
		PlaceholderProfessional: v.ProfessionalName,
		PlaceholderDate:         v.At.Format("02/01/2006"),
		PlaceholderTime:         v.At.Format("15:04"),
	})
}
