package di

import (
	"context"
	"fmt"

	"github.com/aristath/bazaar/internal/clients/aiproxy"
	"github.com/aristath/bazaar/internal/config"
	"github.com/aristath/bazaar/internal/events"
	"github.com/aristath/bazaar/internal/modules/analysis"
	"github.com/aristath/bazaar/internal/modules/derivatives"
	"github.com/aristath/bazaar/internal/modules/funds"
	"github.com/aristath/bazaar/internal/modules/market"
	"github.com/aristath/bazaar/internal/modules/overview"
	"github.com/aristath/bazaar/internal/modules/portfolio"
	"github.com/aristath/bazaar/internal/modules/settings"
	"github.com/aristath/bazaar/internal/modules/universe"
	"github.com/aristath/bazaar/internal/reliability"
	"github.com/rs/zerolog"
)

// InitializeServices creates all services and stores them in the container
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	if container == nil {
		return fmt.Errorf("container cannot be nil")
	}

	container.EventBus = events.NewBus(events.DefaultBufferSize, log)
	container.EventManager = events.NewManager(container.EventBus, log)

	// Preferences are read once here and written through on change
	container.SettingsService = settings.NewService(container.SettingsRepo, container.EventManager, log)
	if _, err := container.SettingsService.Load(); err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	if err := cfg.UpdateFromSettings(container.SettingsRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to update config from settings, using environment")
	}

	container.AnalysisClient = aiproxy.NewClient(aiproxy.Config{
		EndpointURL: cfg.AnalysisEndpointURL,
		APIKey:      cfg.AnalysisAPIKey,
		Timeout:     cfg.AnalysisTimeout,
	}, log)
	if !container.AnalysisClient.Configured() {
		log.Info().Msg("Analysis endpoint not configured, serving generated research data only")
	}

	container.QuoteGenerator = market.NewGenerator(nil)

	container.UniverseService = universe.NewService(container.FeaturedRepo, log)
	container.MarketService = market.NewService(container.QuoteGenerator, universe.Companies, log)
	if restored, err := container.MarketService.Restore(container.CacheRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to restore movers snapshot")
	} else if restored {
		log.Info().Msg("Restored today's movers snapshot")
	}
	container.AnalysisService = analysis.NewService(
		container.UniverseService,
		container.AnalysisClient,
		container.CacheRepo,
		cfg.CacheTTL,
		log,
	)
	container.PortfolioService = portfolio.NewService(
		container.HoldingRepo,
		container.QuoteGenerator,
		container.UniverseService,
		log,
	)
	container.DerivativesService = derivatives.NewService(nil, log)
	container.FundsService = funds.NewService(container.SettingsService, nil, log)
	container.OverviewService = overview.NewService(
		container.PortfolioService,
		container.DerivativesService,
		container.FundsService,
		log,
	)

	if cfg.Backup.Enabled() {
		store, err := reliability.NewS3Store(context.Background(), reliability.S3Config{
			Endpoint:        cfg.Backup.Endpoint,
			Region:          cfg.Backup.Region,
			Bucket:          cfg.Backup.Bucket,
			AccessKeyID:     cfg.Backup.AccessKeyID,
			SecretAccessKey: cfg.Backup.SecretAccessKey,
		})
		if err != nil {
			return fmt.Errorf("failed to create backup store: %w", err)
		}
		container.BackupService = reliability.NewBackupService(
			store,
			container.Databases(),
			cfg.DataDir,
			cfg.Backup.Prefix,
			log,
		)
	}

	log.Info().Msg("Services initialized")
	return nil
}
