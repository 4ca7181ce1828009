package twilio

import (
	"agenda-server/internal/messaging"
	"agenda-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const whatsappPrefix = "whatsapp:"

var ErrMissingSender = errors.New("twilio whatsapp sender number is not configured")

// messageCreator is the part of the Twilio REST API the client needs
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Client sends WhatsApp messages through Twilio's Messages API
type Client struct {
	api    messageCreator
	from   string
	logger *observability.Logger
}

// NewClient creates a Twilio client for the given account. from is the
// WhatsApp enabled Twilio number, with or without the whatsapp: prefix.
func NewClient(accountSID, authToken, from string, logger *observability.Logger) *Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newClient(rest.Api, from, logger)
}

func newClient(api messageCreator, from string, logger *observability.Logger) *Client {
	return &Client{
		api:    api,
		from:   whatsappAddress(from),
		logger: logger,
	}
}

var _ messaging.Sender = (*Client)(nil)

// SendText sends text to number. The route's instance name is only used
// for logging since Twilio sends from the configured account number.
func (c *Client) SendText(ctx context.Context, route messaging.Route, number, text string) error {
	if c.from == "" {
		return ErrMissingSender
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "gateway", Value: "twilio"},
		observability.Field{Key: "instance", Value: route.InstanceName},
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsappAddress(number))
	params.SetFrom(c.from)
	params.SetBody(text)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send whatsapp message through twilio", err)
		return fmt.Errorf("failed to send twilio message: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		c.logger.Debug(observability.WithFields(ctx, observability.Field{Key: "message_sid", Value: *resp.Sid}), "twilio message queued")
	}
	return nil
}

// whatsappAddress turns a digits-only number into a Twilio WhatsApp address
func whatsappAddress(number string) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return ""
	}
	number = strings.TrimPrefix(number, whatsappPrefix)
	if !strings.HasPrefix(number, "+") {
		number = "+" + number
	}
	return whatsappPrefix + number
}
