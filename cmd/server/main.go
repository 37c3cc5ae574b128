package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"church-admin/internal/config"
	"church-admin/internal/database"
	"church-admin/internal/handlers"
	"church-admin/internal/middleware"
	"church-admin/internal/models"
	"church-admin/internal/repositories"
	"church-admin/internal/scheduler"
	"church-admin/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}

// run opens the database and serves until SIGINT or SIGTERM. Everything it
// opens is released before it returns.
func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, db, prometheus.DefaultRegisterer, logger)
}

// serve wires the API on db and blocks until ctx is done or the listener
// fails.
func serve(ctx context.Context, cfg *config.Config, db *database.DB, reg prometheus.Registerer, logger *slog.Logger) error {
	loc := cfg.Reports.Location()

	// Repositories
	churchRepo := repositories.NewChurchRepository(db.DB)
	movementRepo := repositories.NewMovementRepository(db.DB)
	membershipRepo := repositories.NewMembershipRepository(db.DB)
	invitationRepo := repositories.NewInvitationRepository(db.DB)
	auditLogRepo := repositories.NewAuditLogRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics(reg)
	ledgerLogger := services.NewLedgerLogger(logger)
	auditService := services.NewAuditService(auditLogRepo, membershipRepo,
		services.WithLogger(logger))
	balanceService := services.NewBalanceService(movementRepo, churchRepo, metrics, ledgerLogger,
		services.WithLocation(loc),
		services.WithLogger(logger))
	movementService := services.NewMovementService(movementRepo, auditService, metrics, ledgerLogger,
		services.WithLogger(logger))
	membershipService := services.NewMembershipService(membershipRepo, invitationRepo, auditService, ledgerLogger,
		services.WithInvitationTTL(cfg.Security.InvitationTTL),
		services.WithBCryptCost(cfg.Security.BCryptCost),
		services.WithLogger(logger))
	tokenVerifier := services.NewTokenVerifier(cfg.Auth)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	balanceHandler := handlers.NewBalanceHandler(balanceService, auditService, logger)
	movementHandler := handlers.NewMovementHandler(movementService, loc)
	auditHandler := handlers.NewAuditHandler(auditService, loc, logger)
	membershipHandler := handlers.NewMembershipHandler(membershipService)

	limiter := middleware.NewVisitorLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"trace_id", middleware.GetTraceID(c))
			return nil
		},
	}))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader, echo.HeaderContentDisposition},
	}))
	e.Use(echomw.BodyLimit("1M"))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RateLimiter(limiter), middleware.RequireAuth(tokenVerifier))

	api.POST("/invitations/accept", membershipHandler.AcceptInvitation)

	anyMember := middleware.RequireMembership(membershipService, ledgerLogger)
	treasury := middleware.RequireMembership(membershipService, ledgerLogger, models.RoleAdmin, models.RoleTreasurer)
	adminOnly := middleware.RequireMembership(membershipService, ledgerLogger, models.RoleAdmin)
	memberRead := middleware.RequireMembership(membershipService, ledgerLogger, models.RoleAdmin, models.RoleSecretary)

	church := api.Group("/churches/:churchId")
	church.GET("/balance", balanceHandler.GetBalance, anyMember)
	church.GET("/movements", movementHandler.ListMovements, anyMember)
	church.POST("/movements", movementHandler.CreateMovement, treasury)
	church.POST("/exchanges", movementHandler.CreateExchange, treasury)
	church.POST("/movements/:movementId/cancel", movementHandler.CancelMovement, treasury)
	church.GET("/audit-logs", auditHandler.ListAuditLogs, adminOnly)
	church.GET("/audit-logs/export", auditHandler.ExportAuditLogs, adminOnly)
	church.GET("/members", membershipHandler.ListMembers, memberRead)
	church.PUT("/members/:userId", membershipHandler.ChangeRole, adminOnly)
	church.DELETE("/members/:userId", membershipHandler.RemoveMember, adminOnly)
	church.GET("/invitations", membershipHandler.ListInvitations, adminOnly)
	church.POST("/invitations", membershipHandler.CreateInvitation, adminOnly)

	if !cfg.IsProduction() && cfg.Auth.DevPrivateKey != nil {
		issuer, err := services.NewDevTokenIssuer(cfg.Auth)
		if err != nil {
			return fmt.Errorf("failed to create development token issuer: %w", err)
		}
		devHandler := handlers.NewDevHandler(issuer)
		e.POST("/api/v1/dev/token", devHandler.IssueToken, middleware.RateLimiter(limiter))
		logger.Warn("development token endpoint enabled", "path", "/api/v1/dev/token")
	}

	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs = scheduler.NewScheduler(ctx, balanceService, auditService, ledgerLogger, metrics, logger, loc)
		if err := jobs.RegisterAll(cfg.Scheduler); err != nil {
			return fmt.Errorf("failed to register scheduled jobs: %w", err)
		}
		jobs.Start()
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"report_timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		limiter.Run(gctx, time.Minute)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if jobs != nil {
			jobs.Stop(shutdownCtx)
		}
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
