package bootstrap

import (
	"agenda-server/internal/config"
	"agenda-server/internal/observability"
	"agenda-server/internal/store"
	"context"
	"fmt"

	authHandler "agenda-server/internal/auth/handler"
	authProcessor "agenda-server/internal/auth/processor"
	campaignHandler "agenda-server/internal/campaign/handler"
	campaignScheduler "agenda-server/internal/campaign/scheduler"
	"agenda-server/internal/clients/evolution"
	kafkaClient "agenda-server/internal/clients/kafka"
	redisClient "agenda-server/internal/clients/redis"
	twilioClient "agenda-server/internal/clients/twilio"
	"agenda-server/internal/events"
	"agenda-server/internal/messaging"
	"agenda-server/internal/metrics"
	"agenda-server/internal/reminders/delivery"
	reminderHandler "agenda-server/internal/reminders/handler"
	reminderScheduler "agenda-server/internal/reminders/scheduler"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler     authHandler.Handler
	CampaignHandler campaignHandler.Handler
	ReminderHandler reminderHandler.Handler

	// Background schedulers
	CampaignScheduler *campaignScheduler.CampaignScheduler
	ReminderScheduler *reminderScheduler.Scheduler

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	location, err := cfg.Scheduler.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone: %w", err)
	}

	// Initialize database store
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize the WhatsApp gateway
	sender, routes := newGateway(cfg, &deps.Store, logger)
	instrumented := metrics.InstrumentSender(sender)

	// Initialize event publishing
	publisher := events.NewNoopPublisher(logger)
	if brokers := cfg.Kafka.KafkaBrokers(); len(brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		publisher = events.NewPublisher(deps.KafkaProducer, logger)
	} else {
		logger.Warn(ctx, "KAFKA_BROKERS not set, delivery events will not be published")
	}

	// Initialize reminder leases shared between replicas
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	reminderConfig := reminderScheduler.Config{
		ScanInterval: cfg.Scheduler.ReminderScanInterval,
		Lookahead:    cfg.Scheduler.ReminderLookahead,
		Horizon:      cfg.Scheduler.ReminderHorizon,
		Location:     location,
	}
	if deps.RedisClient != nil {
		reminderConfig.Lease = deps.RedisClient
	}

	// Initialize reminder delivery and scheduler
	deliveryService := delivery.New(&deps.Store, routes, instrumented, publisher, delivery.Config{
		Location:    location,
		CountryCode: cfg.Scheduler.CountryCode,
	}, logger)

	deps.ReminderScheduler = reminderScheduler.New(&deps.Store, deliveryService, reminderConfig, logger)
	deps.ReminderHandler = reminderHandler.New(deps.ReminderScheduler, deliveryService, &deps.Store, logger)

	// Initialize campaign scheduler and handler
	deps.CampaignScheduler = campaignScheduler.New(
		&deps.Store,
		routes,
		instrumented,
		campaignThrottle(cfg.Scheduler),
		publisher,
		campaignScheduler.Config{
			TickInterval: cfg.Scheduler.CampaignTickInterval,
			InitialDelay: cfg.Scheduler.CampaignInitialDelay,
			CountryCode:  cfg.Scheduler.CountryCode,
		},
		logger,
	)
	deps.CampaignHandler = campaignHandler.New(deps.CampaignScheduler, &deps.Store, logger)

	// Initialize service token validation
	tokens := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(tokens, logger)

	return deps, nil
}

// newGateway picks the outbound provider. Twilio sends from a single
// configured number, so only the instance name is needed from the store.
func newGateway(cfg *config.Config, routeStore messaging.RouteStore, logger *observability.Logger) (messaging.Sender, *messaging.RouteResolver) {
	if cfg.Gateway.Provider == config.GatewayProviderTwilio {
		client := twilioClient.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.WhatsAppFrom, logger)
		return client, messaging.NewRouteResolver(routeStore, false)
	}
	return evolution.NewClient(cfg.Gateway.Timeout, logger), messaging.NewRouteResolver(routeStore, true)
}

// campaignThrottle paces campaign sends. A send rate overrides the fixed delay.
func campaignThrottle(cfg config.SchedulerConfig) messaging.Throttle {
	if cfg.CampaignSendRate > 0 {
		return messaging.PerSecond(cfg.CampaignSendRate, cfg.CampaignSendBurst)
	}
	return messaging.Every(cfg.CampaignSendDelay)
}

// StartSchedulers launches both background schedulers
func (d *Dependencies) StartSchedulers(ctx context.Context) {
	d.CampaignScheduler.Start(ctx)
	d.ReminderScheduler.Start(ctx)
}

// Cleanup stops the schedulers and closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.CampaignScheduler != nil {
		d.CampaignScheduler.Stop()
	}
	if d.ReminderScheduler != nil {
		d.ReminderScheduler.Stop()
	}
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	d.RedisClient.Close()
	d.Store.Close()
}
