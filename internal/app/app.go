package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/payflowhq/payflow/internal/config"
	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/middleware"
	"github.com/payflowhq/payflow/internal/module/activity"
	"github.com/payflowhq/payflow/internal/module/auth"
	"github.com/payflowhq/payflow/internal/module/event"
	"github.com/payflowhq/payflow/internal/module/notification"
	"github.com/payflowhq/payflow/internal/module/pin"
	"github.com/payflowhq/payflow/internal/module/product"
	"github.com/payflowhq/payflow/internal/module/ticket"
	"github.com/payflowhq/payflow/internal/module/transaction"
	"github.com/payflowhq/payflow/internal/module/user"
	"github.com/payflowhq/payflow/internal/module/wallet"
	"github.com/payflowhq/payflow/internal/pkg"
	"github.com/payflowhq/payflow/internal/token"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine   *gin.Engine
	db       *gorm.DB
	logger   *logger.Logger
	cfg      *config.Config
	recorder *activity.Recorder
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, database, domain repositories, services, handlers,
// middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == "debug" {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Wallet{},
			&domain.Transaction{},
			&domain.Notification{},
			&domain.Activity{},
			&domain.Product{},
			&domain.Ticket{},
			&domain.Event{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Token service for login and the auth middleware.
	tokenSvc, err := token.NewService(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("setup token service: %w", err)
	}

	// 5. Manual dependency injection: repository → service → handler → module.
	cache := pkg.NewCache()
	userRepo := user.NewUserRepository(db)
	activityRepo := activity.NewActivityRepository(db)
	recorder := activity.NewRecorder(activityRepo, log.Logger, cfg.Wallet.ActivityLogDelayDuration())

	pinSvc := pin.NewService(userRepo, recorder)
	moneySvc := wallet.NewMoneyService(db, cache, recorder,
		cfg.Wallet.Currency, cfg.Wallet.BonusDiscountPercent)

	modules := []Module{
		auth.NewModule(auth.NewHandler(auth.NewService(tokenSvc, userRepo, cfg.Auth.TokenExpiryDuration()))),
		user.NewModule(user.NewUserHandler(user.NewUserService(userRepo))),
		pin.NewModule(pin.NewHandler(pinSvc)),
		wallet.NewModule(wallet.NewHandler(moneySvc, pinSvc)),
		transaction.NewModule(transaction.NewHandler(transaction.NewService(transaction.NewTransactionRepository(db)))),
		notification.NewModule(notification.NewHandler(notification.NewService(notification.NewNotificationRepository(db)))),
		activity.NewModule(activity.NewHandler(activity.NewService(activityRepo))),
		product.NewModule(product.NewHandler(product.NewService(product.NewProductRepository(db), cfg.Wallet.Currency))),
		ticket.NewModule(ticket.NewHandler(ticket.NewService(ticket.NewTicketRepository(db)))),
		event.NewModule(event.NewHandler(event.NewService(event.NewEventRepository(db)))),
	}

	// 6. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// Build CORS config from application settings.
	// In release mode, when no allowlist is configured, default to deny cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)
	if cfg.Auth.Enabled {
		engine.Use(middleware.Auth(tokenSvc, cfg.Auth.PublicPaths))
	}

	// 7. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules: modules,
		DB:      db,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine:   engine,
		db:       db,
		logger:   log,
		cfg:      cfg,
		recorder: recorder,
	}, nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout, flushes pending
// activity records, and closes the database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		if a.logger != nil {
			a.logger.Info("server started", slog.String("addr", addr))
		} else {
			slog.Info("server started", slog.String("addr", addr))
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		if a.logger != nil {
			a.logger.Info("shutdown signal received")
		} else {
			slog.Info("shutdown signal received")
		}
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if a.logger != nil {
				a.logger.Error("server shutdown error", slog.Any("error", err))
			} else {
				slog.Error("server shutdown error", slog.Any("error", err))
			}
		}
	}

	// Deferred activity records still in flight must land before the
	// database closes.
	if a.recorder != nil {
		a.recorder.Flush()
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				if a.logger != nil {
					a.logger.Error("database close error", slog.Any("error", err))
				} else {
					slog.Error("database close error", slog.Any("error", err))
				}
			} else {
				if a.logger != nil {
					a.logger.Info("database connection closed")
				} else {
					slog.Info("database connection closed")
				}
			}
		}
	}

	if a.logger != nil {
		a.logger.Info("server stopped")
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	} else {
		slog.Info("server stopped")
	}

	if runErr != nil {
		return runErr
	}

	return nil
}
