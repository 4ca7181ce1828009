package messaging

//go:generate go run go.uber.org/mock/mockgen@latest -source=gateway.go -destination=mocks_test.go -package=messaging

import (
	"agenda-server/internal/store"
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoActiveInstance   = errors.New("company has no connected whatsapp instance")
	ErrMissingCredentials = errors.New("gateway credentials are not configured")
)

// Route addresses one company's session on the gateway
type Route struct {
	BaseURL      string
	APIKey       string
	InstanceName string
}

// Sender delivers a text message to a normalized phone number
type Sender interface {
	SendText(ctx context.Context, route Route, number, text string) error
}

// RouteStore is the persistence needed to resolve a Route
type RouteStore interface {
	GetConnectedWhatsAppInstance(ctx context.Context, companyID int64) (store.WhatsAppInstance, error)
	GetGatewayCredentials(ctx context.Context) (store.GatewayCredentials, error)
}

// RouteResolver looks up the instance and credentials used to reach a company's clients
type RouteResolver struct {
	store              RouteStore
	requireCredentials bool
}

// NewRouteResolver creates a resolver. When requireCredentials is false the
// global gateway settings are optional, which is the case for providers
// configured from the environment.
func NewRouteResolver(store RouteStore, requireCredentials bool) *RouteResolver {
	return &RouteResolver{
		store:              store,
		requireCredentials: requireCredentials,
	}
}

// Resolve returns the Route for a company
func (r *RouteResolver) Resolve(ctx context.Context, companyID int64) (Route, error) {
	instance, err := r.store.GetConnectedWhatsAppInstance(ctx, companyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Route{}, ErrNoActiveInstance
		}
		return Route{}, fmt.Errorf("failed to get whatsapp instance: %w", err)
	}

	creds, err := r.store.GetGatewayCredentials(ctx)
	if err != nil {
		return Route{}, fmt.Errorf("failed to get gateway credentials: %w", err)
	}

	route := Route{
		BaseURL:      strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/"),
		APIKey:       strings.TrimSpace(creds.APIKey),
		InstanceName: instance.InstanceName,
	}
	if r.requireCredentials && (route.BaseURL == "" || route.APIKey == "") {
		return Route{}, ErrMissingCredentials
	}
	return route, nil
}
