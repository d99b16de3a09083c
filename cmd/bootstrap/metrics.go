package bootstrap

import (
	"github.com/JeannRezende7/MarcaHora/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func() *metrics.BookingMetrics {
			return metrics.NewBookingMetrics(prometheus.DefaultRegisterer)
		},
	),
)
