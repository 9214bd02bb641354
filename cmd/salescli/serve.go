package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"salescli/internal/app"
	transporthttp "salescli/internal/transport/http"
)

var (
	serveInput     string
	serveRegion    string
	serveMinAmount float64
	serveMaxAmount float64
	serveNoEnrich  bool
	servePort      int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pipeline once and serve the statistics over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, cfg, _, err := setup()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		artifacts, err := application.Run(ctx, app.RunOptions{
			InputFile: serveInput,
			Filter:    filterFromFlags(cmd, serveRegion, serveMinAmount, serveMaxAmount),
			Enrich:    !serveNoEnrich,
		})
		if err != nil {
			return err
		}

		port := cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		handler := transporthttp.NewAnalyticsHandler(artifacts, slog.Default())
		server := &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      handler.Router(),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			slog.Info("Serving analytics", slog.String("addr", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveInput, "input", "", "input file (defaults to the configured data path)")
	serveCmd.Flags().StringVar(&serveRegion, "region", "", "only include transactions from this region")
	serveCmd.Flags().Float64Var(&serveMinAmount, "min-amount", 0, "minimum transaction amount (inclusive)")
	serveCmd.Flags().Float64Var(&serveMaxAmount, "max-amount", 0, "maximum transaction amount (inclusive)")
	serveCmd.Flags().BoolVar(&serveNoEnrich, "no-enrich", false, "skip product catalog enrichment")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (defaults to the configured server port)")
}
