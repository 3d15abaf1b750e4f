package di

import (
	"fmt"

	"github.com/aristath/bazaar/internal/clientdata"
	"github.com/aristath/bazaar/internal/modules/portfolio"
	"github.com/aristath/bazaar/internal/modules/settings"
	"github.com/aristath/bazaar/internal/modules/universe"
	"github.com/rs/zerolog"
)

// InitializeRepositories creates all repositories and stores them in the container
func InitializeRepositories(container *Container, log zerolog.Logger) error {
	if container == nil {
		return fmt.Errorf("container cannot be nil")
	}

	container.HoldingRepo = portfolio.NewHoldingRepository(container.PortfolioDB.Conn(), log)
	container.SettingsRepo = settings.NewRepository(container.ConfigDB.Conn(), log)
	container.FeaturedRepo = universe.NewFeaturedRepository(container.ConfigDB.Conn(), log)
	container.CacheRepo = clientdata.NewRepository(container.CacheDB.Conn())

	log.Info().Msg("Repositories initialized")
	return nil
}
