package app

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EscrowPay/internal/broker"
	"github.com/stpnv0/EscrowPay/internal/config"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/handler"
	"github.com/stpnv0/EscrowPay/internal/middleware"
	"github.com/stpnv0/EscrowPay/internal/notification"
	"github.com/stpnv0/EscrowPay/internal/obs"
	"github.com/stpnv0/EscrowPay/internal/provider/airwallex"
	"github.com/stpnv0/EscrowPay/internal/provider/netsqr"
	"github.com/stpnv0/EscrowPay/internal/provider/paypal"
	"github.com/stpnv0/EscrowPay/internal/provider/stripecheckout"
	"github.com/stpnv0/EscrowPay/internal/repository"
	"github.com/stpnv0/EscrowPay/internal/router"
	"github.com/stpnv0/EscrowPay/internal/scheduler"
	"github.com/stpnv0/EscrowPay/internal/service"
	"github.com/stpnv0/EscrowPay/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	migrationsDir = "migrations"
	serviceName   = "EscrowPay"

	netsQueryRetries      = 3
	airwallexQueryRetries = 3
)

type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

type App struct {
	cfg            *config.Config
	log            logger.Logger
	db             *dbpg.DB
	httpServer     *http.Server
	scheduler      *scheduler.Scheduler
	publisher      eventPublisher
	consumer       *broker.Consumer
	loginListener  *broker.LoginListener
	shutdownTracer func(context.Context) error
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		serviceName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initTracing(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initBroker(); err != nil {
		return nil, fmt.Errorf("init broker: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initTracing() error {
	if !a.cfg.Tracing.Enabled {
		return nil
	}

	shutdown, err := obs.InitTracer(context.Background(), serviceName, a.cfg.Gin.Mode, a.cfg.Tracing.Endpoint)
	if err != nil {
		return err
	}
	a.shutdownTracer = shutdown

	a.log.Info("tracing enabled", logger.String("endpoint", a.cfg.Tracing.Endpoint))
	return nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initBroker: без RABBITMQ_URL события не публикуются, а события входа не слушаются.
func (a *App) initBroker() error {
	rmq := a.cfg.RabbitMQ
	if rmq.URL == "" {
		a.log.Warn("rabbitmq url is empty, events disabled")
		a.publisher = broker.NopPublisher{}
		return nil
	}

	pub, err := broker.NewPublisher(rmq.URL, rmq.Exchange)
	if err != nil {
		return fmt.Errorf("publisher: %w", err)
	}
	a.publisher = pub

	consumer, err := broker.NewConsumer(rmq.URL, rmq.Exchange, rmq.LoginQueue, []string{
		domain.EventLoginFailed,
		domain.EventLoginSucceeded,
	})
	if err != nil {
		_ = pub.Close()
		return fmt.Errorf("consumer: %w", err)
	}
	a.consumer = consumer

	a.log.Info("rabbitmq connected",
		logger.String("exchange", rmq.Exchange),
		logger.String("login_queue", rmq.LoginQueue),
	)
	return nil
}

func (a *App) initProviders() (map[string]ports.PaymentProvider, error) {
	providers := make(map[string]ports.PaymentProvider)

	if nets := a.cfg.Nets; nets.Enabled() {
		providers[domain.ProviderNetsQR] = netsqr.New(netsqr.Config{
			BaseURL:    nets.BaseURL,
			APIKey:     nets.APIKey,
			ProjectID:  nets.ProjectID,
			TxnID:      nets.TxnID,
			MaxRetries: netsQueryRetries,
		}, nil)
	}

	if a.cfg.Stripe.Enabled() {
		providers[domain.ProviderStripe] = stripecheckout.New(a.cfg.Stripe.SecretKey)
	}

	if pp := a.cfg.PayPal; pp.Enabled() {
		adapter, err := paypal.New(pp.ClientID, pp.Secret, pp.Live)
		if err != nil {
			return nil, fmt.Errorf("paypal: %w", err)
		}
		providers[domain.ProviderPayPal] = adapter
	}

	if aw := a.cfg.Airwallex; aw.Enabled() {
		providers[domain.ProviderAirwallex] = airwallex.New(airwallex.Config{
			BaseURL:  aw.BaseURL,
			ClientID: aw.ClientID,
			APIKey:   aw.APIKey,
			LoginAs:  aw.LoginAs,
			Timeout:  aw.Timeout,

			MaxRetries: airwallexQueryRetries,
		}, nil)
	}

	if len(providers) == 0 {
		a.log.Warn("no payment providers configured")
	}
	for name := range providers {
		a.log.Info("payment provider enabled", logger.String("provider", name))
	}

	return providers, nil
}

func (a *App) initServices() error {
	bookingRepo := repository.NewBookingRepo(a.db)
	cartRepo := repository.NewCartRepo(a.db)
	catalogRepo := repository.NewCatalogRepo(a.db)
	orderRepo := repository.NewOrderRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	sessionRepo := repository.NewSessionRepo(a.db)
	fraudRepo := repository.NewFraudRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	providers, err := a.initProviders()
	if err != nil {
		return fmt.Errorf("init providers: %w", err)
	}

	bookingService := service.NewBookingService(bookingRepo, a.log)

	fraudService := service.NewFraudService(fraudRepo, orderRepo, n, service.FraudRules{
		SingleThreshold: a.cfg.Fraud.Single(),
		BurstThreshold:  a.cfg.Fraud.Burst(),
		BurstCount:      a.cfg.Fraud.BurstCount,
		Window:          a.cfg.Fraud.Window,
		LoginLimit:      a.cfg.Fraud.LoginLimit,
	}, a.log)

	settlementService := service.NewSettlementService(
		orderRepo,
		paymentRepo,
		sessionRepo,
		bookingService,
		fraudService,
		a.publisher,
		providers,
		service.SettlementOptions{
			PollInterval: a.cfg.Nets.PollInterval,
			MaxPolls:     a.cfg.Nets.MaxPolls,
			PendingTTL:   a.cfg.Scheduler.PendingTTL,
		},
		a.log,
	)

	checkoutService := service.NewCheckoutService(
		cartRepo,
		catalogRepo,
		orderRepo,
		bookingService,
		fraudService,
		fraudService,
		settlementService.Providers(),
		a.cfg.Checkout.Currencies(),
		a.cfg.Checkout.DefaultCurrency,
		a.log,
	)

	if a.consumer != nil {
		a.loginListener = broker.NewLoginListener(fraudService, a.log)
	}

	a.scheduler = scheduler.New(
		settlementService,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.PendingTTL,
		a.log,
	)

	h := handler.NewHandler(checkoutService, settlementService, bookingService, fraudService, a.cfg.Server.PublicURL)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	if a.loginListener != nil {
		deliveries, err := a.consumer.Deliveries(ctx)
		if err != nil {
			return fmt.Errorf("consume login events: %w", err)
		}
		go a.loginListener.Start(ctx, deliveries)
	}

	// Сигнал отменяет контексты запросов, SSE-стримы QR завершаются вместе с ним
	a.httpServer.BaseContext = func(net.Listener) context.Context { return ctx }

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			a.log.Error("failed to close consumer", logger.String("error", err.Error()))
		}
	}
	if err := a.publisher.Close(); err != nil {
		a.log.Error("failed to close publisher", logger.String("error", err.Error()))
	}

	if a.shutdownTracer != nil {
		if err := a.shutdownTracer(shutdownCtx); err != nil {
			a.log.Error("failed to flush traces", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
