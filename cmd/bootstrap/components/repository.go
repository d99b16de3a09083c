package components

import (
	"github.com/JeannRezende7/MarcaHora/internal/infra/cache"
	"github.com/JeannRezende7/MarcaHora/internal/infra/readstore"
	"github.com/JeannRezende7/MarcaHora/internal/infra/repository"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/config"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/commands"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(commands.AppointmentWriter)),
		),
		fx.Annotate(
			readstore.NewStoreReadStore,
			fx.As(new(queries.StoreConfigReader)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReader)),
		),
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(queries.AvailabilityCache)),
		),
	),
)

func NewAvailabilityCache(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Availability.CacheTTL)
}
