package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/meeting-booking-backend/internal/api"
	"github.com/nekogravitycat/meeting-booking-backend/internal/auth"
	"github.com/nekogravitycat/meeting-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/meeting-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/meeting-booking-backend/internal/calendar"
	"github.com/nekogravitycat/meeting-booking-backend/internal/schedule"
	scheduleHttp "github.com/nekogravitycat/meeting-booking-backend/internal/schedule/http"
	"github.com/nekogravitycat/meeting-booking-backend/internal/user"
	userHttp "github.com/nekogravitycat/meeting-booking-backend/internal/user/http"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction       bool
	ProdOrigins        []string
	GoogleClientID     string
	GoogleClientSecret string
	OAuthCallbackURL   string
	FetchConcurrency   int
	Logger             *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	oauthCfg := auth.NewOAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthCallbackURL)
	calClient := calendar.NewClient(oauthCfg, cfg.Logger)

	// Schedule Module
	normalizer := schedule.NewNormalizer(cfg.Logger)
	engine := schedule.NewEngine(normalizer, cfg.Logger, cfg.FetchConcurrency)
	scheduleHandler := scheduleHttp.NewHandler(engine, calClient)

	// User Module
	userService := user.NewService(oauthCfg)
	userHandler := userHttp.NewHandler(userService)

	// Booking Module
	bookingService := booking.NewService(calClient)
	bookingHandler := bookingHttp.NewHandler(bookingService, userService)

	// API Router Config
	routerParams := api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		OAuthConfig:     oauthCfg,
		ScheduleHandler: scheduleHandler,
		BookingHandler:  bookingHandler,
		UserHandler:     userHandler,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router: router,
	}
}
