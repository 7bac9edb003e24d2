// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/unclebandit/customer-records/internal/config"
	"github.com/unclebandit/customer-records/internal/controller"
	"github.com/unclebandit/customer-records/internal/db"
	"github.com/unclebandit/customer-records/internal/handler"
	"github.com/unclebandit/customer-records/internal/logger"
	"github.com/unclebandit/customer-records/internal/metrics"
	"github.com/unclebandit/customer-records/internal/queue"
	"github.com/unclebandit/customer-records/internal/repository"
	"github.com/unclebandit/customer-records/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	conn, err := db.Open(ctx, db.Config{
		Driver:          cfg.DBDriver,
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Info("connected to database", zap.String("driver", cfg.DBDriver))

	q, closeQueue, err := openQueue(cfg, log)
	if err != nil {
		return err
	}
	defer closeQueue()

	m := metrics.New()
	customerRepo := &repository.CustomerRepository{DB: conn}

	customerService := &service.CustomerService{
		CustomerRepo: customerRepo,
		Queue:        q,
		Metrics:      m,
		Logger:       log,
	}

	customerController := &controller.CustomerController{
		CustomerService: customerService,
		Logger:          log,
	}

	healthHandler := &handler.HealthHandler{DB: conn, Logger: log}

	r := controller.NewRouter(customerController, m, log)
	healthHandler.Register(r)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server running", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openQueue returns a nil Queue when events are disabled.
func openQueue(cfg config.Config, log *zap.Logger) (queue.Queue, func(), error) {
	switch cfg.QueueDriver {
	case "amqp":
		aq, err := queue.DialAMQP(cfg.AMQPURL, log)
		if err != nil {
			return nil, nil, err
		}
		log.Info("publishing customer events to amqp")
		return aq, func() { _ = aq.Close() }, nil
	case "memory":
		mq := queue.NewInMemoryQueue(log)
		if err := queue.StartCustomerSavedSubscriber(mq, log); err != nil {
			return nil, nil, err
		}
		return mq, func() {}, nil
	default:
		return nil, func() {}, nil
	}
}
