package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gameonbaby/config"
	_ "gameonbaby/docs"
	"gameonbaby/internal/adapters/auth"
	"gameonbaby/internal/adapters/cache"
	"gameonbaby/internal/adapters/email"
	"gameonbaby/internal/adapters/qr"
	httpdelivery "gameonbaby/internal/delivery/http"
	"gameonbaby/internal/delivery/http/controllers"
	"gameonbaby/internal/delivery/http/middleware"
	"gameonbaby/internal/domain"
	"gameonbaby/internal/repository/postgres"
	"gameonbaby/internal/services"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const serviceTimeout = 10 * time.Second

// @title GameOn Baby API
// @version 1.0
// @description Event registration backend: events, registrations with a
// @description waiting list, payment tracking with QR codes, and no-show
// @description follow-up.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	var roleCache domain.RoleCache
	if cfg.CacheProvider == "redis" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("invalid redis url", "err", err)
			os.Exit(1)
		}
		roleCache = cache.NewRedisRoleCache(redis.NewClient(opts), cfg.RoleCacheTTL)
	} else {
		roleCache = cache.NewMemoryRoleCache(cfg.RoleCacheTTL)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:        cfg.EmailProvider,
		FromAddress:     cfg.EmailFrom,
		FromName:        cfg.EmailFromName,
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	verifier := auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	qrGenerator := qr.NewSPDGenerator()
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	waitingListRepo := postgres.NewWaitingListRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	noShowRepo := postgres.NewNoShowRepository(db)
	userRepo := postgres.NewUserRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)

	eventService := services.NewEventService(eventRepo, historyRepo, serviceTimeout)
	registrationService := services.NewRegistrationService(eventRepo, registrationRepo, waitingListRepo, qrGenerator, emailService, cfg.DefaultBankAccount, serviceTimeout)
	waitingListService := services.NewWaitingListService(eventRepo, waitingListRepo, registrationRepo, serviceTimeout)
	paymentService := services.NewPaymentService(registrationRepo, paymentRepo, eventRepo, qrGenerator, cfg.DefaultBankAccount, serviceTimeout)
	noShowService := services.NewNoShowService(noShowRepo, eventRepo, serviceTimeout)
	userService := services.NewUserService(userRepo, roleCache, serviceTimeout)
	historyService := services.NewHistoryService(historyRepo, serviceTimeout)
	limiter := services.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)

	router := httpdelivery.NewRouter(httpdelivery.RouterConfig{
		Logger:        logger,
		Verifier:      verifier,
		Users:         userService,
		Limiter:       limiter,
		Events:        controllers.NewEventController(logger, eventService),
		Registrations: controllers.NewRegistrationController(logger, registrationService, paymentService),
		WaitingList:   controllers.NewWaitingListController(logger, waitingListService),
		NoShows:       controllers.NewNoShowController(logger, noShowService),
		UserCtrl:      controllers.NewUserController(logger, userService),
		History:       controllers.NewHistoryController(logger, historyService),
		Stream:        controllers.NewStreamController(logger, registrationService, cfg.StreamPollInterval),
	})

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, router))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		// No global write timeout: the participant stream holds its
		// connection open for the lifetime of the client.
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
