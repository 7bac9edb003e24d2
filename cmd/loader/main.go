// cmd/loader/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-records/internal/config"
	"github.com/unclebandit/customer-records/internal/loader"
	"github.com/unclebandit/customer-records/internal/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var file, apiURL string
	cmd := &cobra.Command{
		Use:           "loader",
		Short:         "Replay a customer CSV file against the customer API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
				With(zap.String("run_id", uuid.NewString()))
			defer log.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return load(ctx, log, file, apiURL)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", cfg.LoaderFile, "CSV file to load")
	cmd.Flags().StringVar(&apiURL, "api-url", cfg.LoaderAPIURL, "base URL of the customer API")
	return cmd
}

func load(ctx context.Context, log *zap.Logger, file, apiURL string) error {
	f, err := os.Open(file)
	if err != nil {
		log.Error("cannot open batch file", zap.String("file", file), zap.Error(err))
		return err
	}
	defer f.Close()

	l := &loader.Loader{Saver: loader.NewClient(apiURL), Logger: log}
	sent, err := l.Run(ctx, f)
	if err != nil {
		log.Error("batch load aborted", zap.String("file", file), zap.Int("sent", sent), zap.Error(err))
		return err
	}
	log.Info("batch load completed", zap.String("file", file), zap.Int("sent", sent))
	return nil
}
