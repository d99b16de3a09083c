package bootstrap

import (
	"github.com/JeannRezende7/MarcaHora/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
