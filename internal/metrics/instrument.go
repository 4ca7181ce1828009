package metrics

import (
	"agenda-server/internal/messaging"
	"context"
	"time"
)

// InstrumentedSender records the latency and outcome of every send
type InstrumentedSender struct {
	next messaging.Sender
}

// InstrumentSender wraps a Sender with gateway metrics
func InstrumentSender(next messaging.Sender) *InstrumentedSender {
	return &InstrumentedSender{next: next}
}

// SendText forwards to the wrapped Sender
func (s *InstrumentedSender) SendText(ctx context.Context, route messaging.Route, number, text string) error {
	start := time.Now()
	err := s.next.SendText(ctx, route, number, text)

	status := "success"
	if err != nil {
		status = "failure"
	}
	RecordGatewayRequest(status, time.Since(start).Seconds())
	return err
}
