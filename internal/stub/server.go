// Package stub is a self-contained stand-in for the hospital
// management API. It serves the same endpoints with the same bodies
// (including error shapes) from an in-memory dataset, so the console
// and the SDK can be exercised without the real backend.
package stub

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Server wires the stub together: dataset, token issuer, reset
// tokens, mailer, metrics and the gin engine.
type Server struct {
	cfg     *Config
	logger  zerolog.Logger
	store   *Store
	issuer  *TokenIssuer
	resets  *ResetTokens
	mailer  Mailer
	metrics *serverMetrics
	engine  *gin.Engine
}

func NewServer(cfg *Config, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		store:   NewStore(),
		issuer:  NewTokenIssuer(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL),
		resets:  NewResetTokens(),
		mailer:  NewMailer(cfg, logger),
		metrics: newServerMetrics(),
	}
	s.engine = s.buildRouter()
	return s
}

// Router exposes the engine; tests mount it on httptest servers.
func (s *Server) Router() *gin.Engine { return s.engine }

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))
	r.Use(s.metrics.middleware())
	r.Use(rateLimit(rate.Limit(s.cfg.RateLimit), s.cfg.RateBurst))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		api.POST("/login/", s.handleLogin)
		api.POST("/register/", s.handleRegister)
		api.POST("/forgot-password/", s.handleForgotPassword)
		api.POST("/reset-password/", s.handleResetPassword)

		authed := api.Group("", requireAuth(s.issuer))
		{
			authed.GET("/users/me/", s.handleCurrentUser)
			authed.PUT("/change-password/", s.handleChangePassword)

			authed.GET("/users/", listHandler(s.store.Users))
			authed.GET("/hospitals/", listHandler(s.store.Hospitals))
			authed.GET("/buildings/", listHandler(s.store.Buildings))
			authed.GET("/floors/", listHandler(s.store.Floors))
			authed.GET("/wards/", listHandler(s.store.Wards))
			authed.GET("/beds/", listHandler(s.store.Beds))
			authed.GET("/devices/", listHandler(s.store.Devices))
			authed.GET("/staff-teams/", listHandler(s.store.StaffTeams))
			authed.GET("/nurses/", listHandler(s.store.Nurses))
			authed.GET("/team-assignments/", listHandler(s.store.TeamAssignments))
			authed.GET("/calls/", listHandler(s.store.Calls))
			authed.GET("/patients/", listHandler(s.store.Patients))
		}
	}

	return r
}
