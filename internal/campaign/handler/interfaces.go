package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	campaignScheduler "agenda-server/internal/campaign/scheduler"
	"agenda-server/internal/store"
)

type CampaignRunner interface {
	ProcessDueCampaigns(ctx context.Context) (campaignScheduler.TickResult, error)
}

type CampaignStore interface {
	GetCampaignByID(ctx context.Context, campaignID int64) (store.Campaign, error)
	ListCampaignHistory(ctx context.Context, campaignID int64) ([]store.CampaignHistory, error)
}
