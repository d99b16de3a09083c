package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/JeannRezende7/MarcaHora/internal/handler/api"
	"github.com/JeannRezende7/MarcaHora/internal/handler/middleware"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	storeHandler *api.StoreHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	appointmentHandler *api.AppointmentHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, storeHandler, availabilityHandler, bookingHandler, appointmentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	storeHandler *api.StoreHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	appointmentHandler *api.AppointmentHandler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("/public")
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/stores/:id", Handler: storeHandler.GetProfile},
				{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.GetAvailability},
				{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.CreateBooking},
			})
		}

		stores := apiGroup.Group("/stores/:id")
		{
			addRoutes(stores, []route{
				{Method: http.MethodGet, Path: "/appointments", Handler: appointmentHandler.ListAppointments},
				{Method: http.MethodGet, Path: "/appointments/:appointmentId", Handler: appointmentHandler.GetAppointment},
				{Method: http.MethodPatch, Path: "/appointments/:appointmentId/status", Handler: appointmentHandler.UpdateStatus},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
