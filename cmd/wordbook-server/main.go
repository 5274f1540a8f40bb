package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/wordbook/internal/bootstrap"
	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/messages"
	"github.com/at-ishikawa/wordbook/internal/server"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configFile string
		debugMode  bool
	)
	rootCmd := &cobra.Command{
		Use:           "wordbook-server",
		Short:         "Word definition storage HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			setupLogger(debugMode || cfg.Log.Debug)
			return run(cmd.Context(), cfg)
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	return rootCmd
}

func run(ctx context.Context, cfg *config.Config) error {
	srv, err := newHTTPServer(cfg)
	if err != nil {
		return fmt.Errorf("newHTTPServer() > %w", err)
	}

	app := bootstrap.New(time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second)
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		listener, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			return fmt.Errorf("net.Listen(%s) > %w", srv.Addr, err)
		}
		slog.Default().Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func newHTTPServer(cfg *config.Config) (*http.Server, error) {
	table, err := messages.Load(cfg.Messages.File)
	if err != nil {
		return nil, fmt.Errorf("messages.Load() > %w", err)
	}

	service, err := server.NewService(dictionary.NewMemoryStore(), table)
	if err != nil {
		return nil, fmt.Errorf("server.NewService() > %w", err)
	}

	handler := server.LogRequests(service, slog.Default())
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}, nil
}

func loadConfig(configFile string) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
