// @title Conference Schedule API
// @version 1.0
// @description Conference timetables, calendar feeds and personal schedules.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conferenceschedule/config"
	_ "conferenceschedule/docs"
	"conferenceschedule/internal/adapters/auth"
	"conferenceschedule/internal/adapters/cache"
	"conferenceschedule/internal/adapters/email"
	"conferenceschedule/internal/adapters/ical"
	"conferenceschedule/internal/adapters/render"
	deliveryhttp "conferenceschedule/internal/delivery/http"
	"conferenceschedule/internal/delivery/http/controllers"
	"conferenceschedule/internal/delivery/http/middleware"
	"conferenceschedule/internal/domain"
	"conferenceschedule/internal/repository/postgres"
	"conferenceschedule/internal/services"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Warn("database not reachable at startup", "err", err)
	}

	var responseCache domain.ResponseCache
	if cfg.Cache.Enabled && cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, cache.RedisConfig{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			logger.Warn("response cache disabled", "addr", cfg.Redis.Addr, "err", err)
		} else {
			defer client.Close()
			responseCache = cache.NewRedisStore(client)
		}
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	pages, err := render.NewPageRenderer()
	if err != nil {
		return err
	}
	emailTemplates, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}

	// Repositories
	scheduleRepo := postgres.NewScheduleRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	fareRepo := postgres.NewFareRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	userRepo := postgres.NewUserRepository(db)
	searchIndex := postgres.NewSearchIndex(db)

	// Services
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, auth.NewBcryptHasher(bcrypt.DefaultCost), issuer, cfg.JWTExpiry, cfg.RequestTimeout)
	emailService := services.NewEmailService(mailer, emailTemplates, logger)
	scheduleService := services.NewScheduleService(services.ScheduleServiceDeps{
		Schedules:  scheduleRepo,
		Fares:      fareRepo,
		Attendance: attendanceRepo,
		Users:      userRepo,
		Search:     searchIndex,
		Email:      emailService,
		Builder:    services.NewTimetableBuilder(eventRepo, scheduleRepo, logger),
		Logger:     logger,
		SiteHost:   cfg.SiteHost,
	}, cfg.RequestTimeout)
	calendarService := services.NewCalendarService(eventRepo, attendanceRepo, ical.NewEncoder(), services.CalendarConfig{
		SiteHost:       cfg.SiteHost,
		TalkURLPath:    cfg.TalkURLPath,
		OrganizerName:  cfg.OrganizerName,
		OrganizerEmail: cfg.OrganizerEmail,
		ProdID:         cfg.CalendarProdID,
	}, cfg.RequestTimeout)

	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Schedule: controllers.NewScheduleController(logger, scheduleService, pages, cfg.DefaultConference),
		Calendar: controllers.NewCalendarController(logger, calendarService, authService),
		Auth: controllers.NewAuthController(logger, authService, controllers.SessionCookie{
			Name:   cfg.SessionCookie,
			Secure: cfg.Environment == "production",
			MaxAge: cfg.JWTExpiry,
		}),
		Health: controllers.NewHealthController(logger, db),
	}, deliveryhttp.RouterConfig{
		LoginURL: cfg.LoginURL,
		Cache: middleware.ResponseCache(middleware.CacheConfig{
			Enabled:       responseCache != nil,
			TTL:           cfg.Cache.TTL,
			Prefix:        middleware.CacheKeyPrefix(cfg.Cache.Prefix),
			SessionCookie: cfg.SessionCookie,
			MaxBodyBytes:  4 << 20,
		}, responseCache, logger),
	})

	var handler http.Handler = middleware.Authenticate(verifier, cfg.SessionCookie, logger)(router)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server shut down successfully")
	return nil
}
