// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/unclebandit/customer-records/internal/config"
	"github.com/unclebandit/customer-records/internal/logger"
	"github.com/unclebandit/customer-records/internal/queue"
)

// The worker logs every customer_saved event published by the server with QUEUE_DRIVER=amqp.
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
		log.Fatal("worker stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	q, err := queue.DialAMQP(cfg.AMQPURL, log)
	if err != nil {
		return err
	}
	defer q.Close()

	closed := q.NotifyClose()
	if err := queue.StartCustomerSavedSubscriber(q, log); err != nil {
		return err
	}
	log.Info("worker running, waiting for messages", zap.String("topic", queue.TopicCustomerSaved))

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		return nil
	case amqpErr, ok := <-closed:
		if !ok || amqpErr == nil {
			return nil
		}
		return fmt.Errorf("queue connection closed: %w", amqpErr)
	}
}
