package scheduler

import (
	"agenda-server/internal/events"
	"agenda-server/internal/messaging"
	"agenda-server/internal/metrics"
	"agenda-server/internal/observability"
	"agenda-server/internal/store"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCampaign   = errors.New("campaign is missing its id or company")
	ErrUnknownTargetType = errors.New("unknown campaign target type")
	errCampaignPanicked  = errors.New("campaign processing panicked")
)

// Config controls the tick cadence and message formatting
type Config struct {
	TickInterval time.Duration
	InitialDelay time.Duration
	CountryCode  string
}

// TickResult summarizes one pass over due campaigns
type TickResult struct {
	RunID     string `json:"run_id"`
	Due       int    `json:"due"`
	Processed int    `json:"processed"`
}

// CampaignScheduler periodically sends due campaigns through the messaging gateway
type CampaignScheduler struct {
	store     CampaignStore
	routes    RouteResolver
	sender    messaging.Sender
	throttle  messaging.Throttle
	publisher EventPublisher
	config    Config
	logger    *observability.Logger
	now       func() time.Time

	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

// New creates a new campaign scheduler
func New(
	store CampaignStore,
	routes RouteResolver,
	sender messaging.Sender,
	throttle messaging.Throttle,
	publisher EventPublisher,
	config Config,
	logger *observability.Logger,
) *CampaignScheduler {
	if config.TickInterval <= 0 {
		config.TickInterval = time.Minute
	}
	if config.InitialDelay < 0 {
		config.InitialDelay = 0
	}
	if config.CountryCode == "" {
		config.CountryCode = messaging.DefaultCountryCode
	}
	if throttle == nil {
		throttle = messaging.NoThrottle
	}

	return &CampaignScheduler{
		store:     store,
		routes:    routes,
		sender:    sender,
		throttle:  throttle,
		publisher: publisher,
		config:    config,
		logger:    logger,
		now:       time.Now,
	}
}

// Start runs one tick after the initial delay and then one per tick
// interval. Starting a running scheduler replaces the previous loop.
func (s *CampaignScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.stop != nil {
		close(s.stop)
	}
	stop := make(chan struct{})
	s.stop = stop
	s.wg.Add(1)
	s.mu.Unlock()

	ctx = observability.WithFields(context.WithoutCancel(ctx),
		observability.Field{Key: "worker", Value: "campaign_scheduler"},
	)

	go func() {
		defer s.wg.Done()
		s.loop(ctx, stop)
	}()
}

func (s *CampaignScheduler) loop(ctx context.Context, stop <-chan struct{}) {
	s.logger.Info(ctx, fmt.Sprintf("campaign scheduler started with %v interval", s.config.TickInterval))

	initial := time.NewTimer(s.config.InitialDelay)
	defer initial.Stop()

	ticker := time.NewTicker(s.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			s.logger.Info(ctx, "campaign scheduler stopped")
			return
		case <-initial.C:
			s.tick(ctx, stop)
		case <-ticker.C:
			s.tick(ctx, stop)
		}
	}
}

// Stop cancels the repeating tick and waits for the loop to exit. A
// campaign being sent finishes its batch; due campaigns not yet claimed
// stay pending for the next start.
func (s *CampaignScheduler) Stop() {
	s.mu.Lock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// IsRunning reports whether the tick loop is active
func (s *CampaignScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *CampaignScheduler) tick(ctx context.Context, stop <-chan struct{}) {
	if _, err := s.processDue(ctx, stop); err != nil {
		s.logger.Error(ctx, "campaign tick failed", err)
	}
}

// ProcessDueCampaigns sends every pending campaign whose scheduled date has
// arrived, oldest first. A failing campaign never stops the others.
func (s *CampaignScheduler) ProcessDueCampaigns(ctx context.Context) (TickResult, error) {
	return s.processDue(ctx, nil)
}

// processDue stops claiming new campaigns once stop is closed
func (s *CampaignScheduler) processDue(ctx context.Context, stop <-chan struct{}) (TickResult, error) {
	start := time.Now()
	defer func() {
		metrics.RecordCampaignTick(time.Since(start).Seconds())
	}()

	result := TickResult{RunID: uuid.New().String()}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "process_due_campaigns"},
		observability.Field{Key: "run_id", Value: result.RunID},
	)

	campaigns, err := s.store.GetDueCampaigns(ctx, s.now())
	if err != nil {
		return result, fmt.Errorf("failed to get due campaigns: %w", err)
	}
	result.Due = len(campaigns)

	if len(campaigns) == 0 {
		return result, nil
	}

	s.logger.Info(ctx, fmt.Sprintf("found %d due campaigns", len(campaigns)))

	for _, campaign := range campaigns {
		if stopping(stop) {
			s.logger.Info(ctx, "scheduler stopping, leaving remaining campaigns pending")
			break
		}
		if s.processCampaign(ctx, result.RunID, campaign) {
			result.Processed++
		}
	}

	return result, nil
}

// processCampaign claims and sends one campaign. It reports whether this
// call owned the campaign.
func (s *CampaignScheduler) processCampaign(ctx context.Context, runID string, campaign store.Campaign) (owned bool) {
	ctx = observability.WithFields(context.WithoutCancel(ctx),
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "company_id", Value: campaign.CompanyID},
	)

	if campaign.ID <= 0 || campaign.CompanyID <= 0 {
		s.logger.Warn(ctx, ErrInvalidCampaign.Error())
		return false
	}

	claimed, err := s.store.ClaimCampaign(ctx, campaign.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to claim campaign", err)
		return false
	}
	if !claimed {
		s.logger.Info(ctx, "campaign already claimed, skipping")
		return false
	}

	var sent, total int
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "campaign processing panicked", fmt.Errorf("%w: %v", errCampaignPanicked, r))
			s.finish(ctx, runID, campaign, store.CampaignStatusFailed, sent, total)
			owned = true
		}
	}()

	targets, err := s.resolveTargets(ctx, campaign)
	if err != nil {
		s.logger.Error(ctx, "failed to resolve campaign targets", err)
		s.finish(ctx, runID, campaign, store.CampaignStatusFailed, 0, 0)
		return true
	}
	total = len(targets)

	if total == 0 {
		s.logger.Info(ctx, "campaign has no reachable clients")
		s.finish(ctx, runID, campaign, store.CampaignStatusCompleted, 0, 0)
		return true
	}

	route, err := s.routes.Resolve(ctx, campaign.CompanyID)
	if err != nil {
		s.logger.Error(ctx, "cannot reach the messaging gateway for company", err)
		s.finish(ctx, runID, campaign, store.CampaignStatusFailed, 0, total)
		return true
	}

	for _, client := range targets {
		if s.sendToClient(ctx, campaign, route, client) {
			sent++
		}
	}

	status := store.CampaignStatusFailed
	if sent > 0 {
		status = store.CampaignStatusCompleted
	}
	s.finish(ctx, runID, campaign, status, sent, total)
	return true
}

func stopping(stop <-chan struct{}) bool {
	select {
	case <-stop:
		return true
	default:
		return false
	}
}

func (s *CampaignScheduler) resolveTargets(ctx context.Context, campaign store.Campaign) ([]store.Client, error) {
	switch campaign.TargetType {
	case store.CampaignTargetAll:
		return s.store.ListReachableClients(ctx, campaign.CompanyID)
	case store.CampaignTargetSpecific:
		return s.store.ListReachableClientsByIDs(ctx, campaign.CompanyID, campaign.SelectedClients)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTargetType, campaign.TargetType)
	}
}

// sendToClient sends the campaign message to one client and records the attempt
func (s *CampaignScheduler) sendToClient(ctx context.Context, campaign store.Campaign, route messaging.Route, client store.Client) bool {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: client.ID})

	if client.Phone == nil || strings.TrimSpace(*client.Phone) == "" {
		return false
	}

	phone := messaging.FormatPhone(*client.Phone, s.config.CountryCode)
	message := messaging.CampaignMessage(campaign.Message, client.Name)

	var sendErr error
	if err := s.throttle.Wait(ctx); err != nil {
		sendErr = fmt.Errorf("throttle: %w", err)
	} else {
		sendErr = s.sender.SendText(ctx, route, phone, message)
	}

	params := store.CreateCampaignHistoryParams{
		CampaignID: campaign.ID,
		CompanyID:  campaign.CompanyID,
		ClientID:   client.ID,
		Phone:      phone,
		Message:    message,
		Status:     store.DeliveryStatusSent,
	}
	if sendErr != nil {
		errMsg := sendErr.Error()
		params.Status = store.DeliveryStatusFailed
		params.ErrorMessage = &errMsg
		s.logger.Error(ctx, "failed to send campaign message", sendErr)
	}

	if err := s.store.CreateCampaignHistory(ctx, params); err != nil {
		s.logger.Error(ctx, "failed to record campaign history", err)
	}
	metrics.RecordCampaignMessage(params.Status)

	return sendErr == nil
}

func (s *CampaignScheduler) finish(ctx context.Context, runID string, campaign store.Campaign, status string, sent, total int) {
	if err := s.store.FinishCampaign(ctx, campaign.ID, status, sent, total); err != nil {
		s.logger.Error(ctx, "failed to update campaign status", err)
	}
	metrics.RecordCampaignFinished(status)

	err := s.publisher.PublishCampaignFinished(ctx, events.CampaignFinished{
		CampaignID:   campaign.ID,
		CompanyID:    campaign.CompanyID,
		Status:       status,
		SentCount:    sent,
		TotalTargets: total,
		RunID:        runID,
	})
	if err != nil {
		s.logger.Warn(ctx, fmt.Sprintf("failed to publish campaign event: %v", err))
	}

	s.logger.Info(ctx, fmt.Sprintf("campaign %s: %d/%d messages sent", status, sent, total))
}
