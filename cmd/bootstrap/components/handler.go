package components

import (
	"github.com/JeannRezende7/MarcaHora/internal/handler"
	"github.com/JeannRezende7/MarcaHora/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStoreHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewAppointmentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
