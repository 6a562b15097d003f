package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnapi/pkg/cli/config"
	controller "github.com/secmon-lab/vulnapi/pkg/controller/http"
	"github.com/secmon-lab/vulnapi/pkg/usecase"
	"github.com/secmon-lab/vulnapi/pkg/utils/metrics"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		docsCfg    config.Docs
		catalogCfg config.Catalog
	)

	flags := joinFlags(
		serverCfg.Flags(),
		docsCfg.Flags(),
		catalogCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting vulnapi server",
				slog.Any("server", serverCfg),
				slog.Any("docs", docsCfg),
				slog.Any("catalog", catalogCfg),
			)

			mode, err := docsCfg.Configure()
			if err != nil {
				return err
			}

			catalog := catalogCfg.Configure(ctx)
			keyDifferences, err := catalogCfg.ConfigureKeyDifferences()
			if err != nil {
				return goerr.Wrap(err, "failed to load key differences")
			}

			logger.Info("Vulnerability catalog ready",
				slog.String("version", catalog.Version()),
				slog.Int("vulnerabilities", catalog.Len()),
				slog.Int("key_differences", keyDifferences.Len()),
				slog.String("mode", mode.String()),
			)

			docsUC := usecase.NewDocs(catalog, keyDifferences, mode)
			rootUC := usecase.NewRoot(Version, mode)

			server, err := controller.NewServer(ctx, serverCfg.Addr, docsUC, rootUC, metrics.New())
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return err
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
