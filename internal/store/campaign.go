package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const campaignColumns = `id, company_id, name, message, scheduled_date, status, target_type, selected_clients, sent_count, total_targets, created_at, updated_at`

const sqlGetDueCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = 'pending' AND scheduled_date <= $1
ORDER BY scheduled_date ASC
`

// GetDueCampaigns retrieves pending campaigns whose scheduled date has arrived
func (s *Store) GetDueCampaigns(ctx context.Context, now time.Time) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetDueCampaigns, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID int64) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

const sqlClaimCampaign = `
UPDATE campaigns
SET status = 'sending',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
`

// ClaimCampaign moves a campaign from pending to sending in one conditional
// update. It reports false when another worker already claimed the row or
// the campaign is no longer pending.
func (s *Store) ClaimCampaign(ctx context.Context, campaignID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlClaimCampaign, campaignID)
	if err != nil {
		return false, fmt.Errorf("failed to claim campaign: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}

const sqlFinishCampaign = `
UPDATE campaigns
SET status = $2,
    sent_count = $3,
    total_targets = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// FinishCampaign writes the terminal status and the final counters
func (s *Store) FinishCampaign(ctx context.Context, campaignID int64, status string, sentCount, totalTargets int) error {
	res, err := s.db.ExecContext(ctx, sqlFinishCampaign, campaignID, status, sentCount, totalTargets)
	if err != nil {
		return fmt.Errorf("failed to finish campaign: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// CreateCampaignHistoryParams represents parameters for recording a campaign send
type CreateCampaignHistoryParams struct {
	CampaignID   int64
	CompanyID    int64
	ClientID     int64
	Phone        string
	Message      string
	Status       string
	ErrorMessage *string
}

const sqlCreateCampaignHistory = `
INSERT INTO campaign_history (campaign_id, company_id, client_id, phone, message, status, error_message)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// CreateCampaignHistory appends a campaign delivery attempt
func (s *Store) CreateCampaignHistory(ctx context.Context, params CreateCampaignHistoryParams) error {
	_, err := s.db.ExecContext(ctx, sqlCreateCampaignHistory,
		params.CampaignID,
		params.CompanyID,
		params.ClientID,
		params.Phone,
		params.Message,
		params.Status,
		params.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to create campaign history: %w", err)
	}
	return nil
}

const sqlListCampaignHistory = `
SELECT id, campaign_id, company_id, client_id, phone, message, status, error_message, created_at
FROM campaign_history
WHERE campaign_id = $1
ORDER BY id ASC
`

// ListCampaignHistory retrieves every recorded attempt for a campaign
func (s *Store) ListCampaignHistory(ctx context.Context, campaignID int64) ([]CampaignHistory, error) {
	var history []CampaignHistory
	err := s.db.SelectContext(ctx, &history, sqlListCampaignHistory, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign history: %w", err)
	}
	return history, nil
}
