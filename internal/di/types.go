// Package di provides dependency injection wiring and initialization.
package di

import (
	"github.com/aristath/bazaar/internal/clientdata"
	"github.com/aristath/bazaar/internal/clients/aiproxy"
	"github.com/aristath/bazaar/internal/database"
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
	"github.com/aristath/bazaar/internal/scheduler"
)

// Container holds all dependencies for the application.
//
// It is created by Wire() and is the single source of truth for service
// instances; the server and CLI read what they need from it.
//
// Databases:
//   - portfolio.db: holdings per user
//   - config.db: UI preferences, SIP overrides, featured stocks
//   - cache.db: memoized analysis bundles and the last movers snapshot
type Container struct {
	// Databases
	PortfolioDB *database.DB
	ConfigDB    *database.DB
	CacheDB     *database.DB

	// Repositories
	HoldingRepo  *portfolio.HoldingRepository
	SettingsRepo *settings.Repository
	FeaturedRepo *universe.FeaturedRepository
	CacheRepo    *clientdata.Repository

	// Infrastructure
	EventBus       *events.Bus
	EventManager   *events.Manager
	AnalysisClient *aiproxy.Client
	QuoteGenerator *market.Generator

	// Services
	UniverseService    *universe.Service
	MarketService      *market.Service
	AnalysisService    *analysis.Service
	PortfolioService   *portfolio.Service
	DerivativesService *derivatives.Service
	FundsService       *funds.Service
	SettingsService    *settings.Service
	OverviewService    *overview.Service
	BackupService      *reliability.BackupService // nil when backups are disabled

	// Background jobs
	Scheduler *scheduler.Scheduler
}

// Databases lists the open databases
func (c *Container) Databases() []*database.DB {
	return []*database.DB{c.PortfolioDB, c.ConfigDB, c.CacheDB}
}

// Close closes every open database
func (c *Container) Close() {
	for _, db := range c.Databases() {
		if db != nil {
			_ = db.Close()
		}
	}
}
