package scheduler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=scheduler

import (
	"agenda-server/internal/events"
	"agenda-server/internal/messaging"
	"agenda-server/internal/store"
	"context"
	"time"
)

// CampaignStore defines the database operations required by the campaign scheduler
type CampaignStore interface {
	GetDueCampaigns(ctx context.Context, now time.Time) ([]store.Campaign, error)
	ClaimCampaign(ctx context.Context, campaignID int64) (bool, error)
	ListReachableClients(ctx context.Context, companyID int64) ([]store.Client, error)
	ListReachableClientsByIDs(ctx context.Context, companyID int64, clientIDs []int64) ([]store.Client, error)
	FinishCampaign(ctx context.Context, campaignID int64, status string, sentCount, totalTargets int) error
	CreateCampaignHistory(ctx context.Context, params store.CreateCampaignHistoryParams) error
}

// RouteResolver finds the gateway route for a company
type RouteResolver interface {
	Resolve(ctx context.Context, companyID int64) (messaging.Route, error)
}

// EventPublisher publishes campaign outcomes
type EventPublisher interface {
	PublishCampaignFinished(ctx context.Context, f events.CampaignFinished) error
}
