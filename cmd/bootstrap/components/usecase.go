package components

import (
	"github.com/JeannRezende7/MarcaHora/internal/pkg/clock"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/commands"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
		queries.NewStoreQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewAppointmentCommands,
	),
)
