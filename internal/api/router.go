package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/nekogravitycat/meeting-booking-backend/internal/auth"
	bookingHttp "github.com/nekogravitycat/meeting-booking-backend/internal/booking/http"
	scheduleHttp "github.com/nekogravitycat/meeting-booking-backend/internal/schedule/http"
	userHttp "github.com/nekogravitycat/meeting-booking-backend/internal/user/http"
)

// Config holds everything NewRouter needs to assemble the HTTP surface.
type Config struct {
	IsProduction    bool
	ProdOrigins     []string
	OAuthConfig     *oauth2.Config
	ScheduleHandler *scheduleHttp.Handler
	BookingHandler  *bookingHttp.Handler
	UserHandler     *userHttp.UserHandler
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	// Cookies carry the session token, so credentials must be allowed.
	corsCfg := cors.DefaultConfig()
	if cfg.IsProduction && len(cfg.ProdOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.ProdOrigins
	} else {
		corsCfg.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type"}
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	// authMiddleware: Requires a provider token in the session cookie.
	authMiddleware := auth.TokenRequired()

	authHandler := NewAuthHandler(cfg.OAuthConfig, cfg.IsProduction)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.GET("/auth/google", authHandler.Redirect)
		v1.GET("/auth/google/callback", authHandler.Callback)

		scheduleHttp.RegisterRoutes(v1, cfg.ScheduleHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, cfg.BookingHandler, authMiddleware)
		userHttp.RegisterRoutes(v1, cfg.UserHandler, authMiddleware)
	}

	return r
}
