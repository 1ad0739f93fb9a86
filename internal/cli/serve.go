package cli

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

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/extract"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
	"github.com/ytget/yt-clipper/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the browser dashboard",
	Long:  "Serve the web dashboard and JSON API for queueing clip downloads.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runServe(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := platform.CreateDirectoryIfNotExists(cfg.Download.Dir); err != nil {
		return fmt.Errorf("create download dir: %w", err)
	}
	if !platform.FFmpegAvailable() {
		logger.Warn("ffmpeg not found, trimming and MP3 extraction unavailable")
	}

	svc := download.NewService(cfg.Download.Dir, cfg.Download.MaxParallel)
	svc.SetUpdateCallback(func(task *model.ClipTask) {
		if task.Status.IsFinished() {
			logger.Info("task finished",
				"id", task.ID,
				"status", string(task.Status),
				"output", task.OutputPath,
				"error", task.LastError,
			)
		}
	})

	handler := web.NewHandler(extract.NewYTDLPExtractor(), svc, PolicyFromConfig(cfg))
	router := web.SetupRoutes(handler)

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("dashboard starting",
		"addr", cfg.Server.Addr(),
		"download_dir", cfg.Download.Dir,
		"max_parallel", cfg.Download.MaxParallel,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
