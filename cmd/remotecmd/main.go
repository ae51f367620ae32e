package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kapu/appsflyer-remote-command-go/internal/app"
	"github.com/kapu/appsflyer-remote-command-go/internal/config"
	"github.com/kapu/appsflyer-remote-command-go/internal/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	listenFlag   bool
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "remotecmd [payload files...]",
	Short: "Dispatch AppsFlyer remote command payloads",
	Long: `remotecmd reads JSON remote command payloads and forwards the resulting
AppsFlyer SDK calls to the operations queue.

Examples:
  remotecmd payloads.json          Process every payload in a file
  cat payloads.json | remotecmd    Process payloads from stdin
  remotecmd --listen               Consume the command and callback queues

SIGINT or SIGTERM stops processing immediately, including while waiting on
an idle stdin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&listenFlag, "listen", false, "Keep consuming the command and callback queues (overrides LISTEN)")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Log level (overrides LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("listen") {
		cfg.Worker.Listen = listenFlag
	}
	if logLevelFlag != "" {
		cfg.Logging.Level = logLevelFlag
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("AppsFlyer remote command starting...",
		zap.String("command_id", cfg.Command.ID),
		zap.String("log_level", cfg.Logging.Level),
		zap.Bool("listen", cfg.Worker.Listen),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble remote command", zap.Error(err))
		return err
	}
	defer container.Close()

	runner, err := container.NewRunner()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	sources, closeSources, err := openSources(args, cfg.Worker.Listen)
	if err != nil {
		return err
	}
	defer closeSources()

	if len(sources) > 0 {
		err := runSources(ctx, runner, sources)
		switch {
		case errors.Is(err, context.Canceled):
			logger.Info("Payload processing interrupted")
		case err != nil:
			logger.Error("Payload processing failed", zap.Error(err))
			if !cfg.Worker.Listen {
				return err
			}
		}
	}

	if cfg.Worker.Listen {
		logger.Info("Listening for remote commands...",
			zap.String("commands_queue", cfg.Bridge.CommandsQueue),
			zap.String("callbacks_queue", cfg.Bridge.CallbacksQueue),
		)
		if err := runner.Listen(ctx); err != nil {
			logger.Error("Listener error", zap.Error(err))
			return err
		}
	}

	logger.Info("Shutdown complete")
	return nil
}

// runSources returns as soon as ctx is cancelled, even while a source is
// blocked in a read such as an idle stdin.
func runSources(ctx context.Context, runner *app.Runner, sources []app.Source) error {
	done := make(chan error, 1)
	go func() {
		_, err := runner.RunSources(ctx, sources...)
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// openSources opens every path argument. "-", or no arguments outside listen
// mode, reads stdin.
func openSources(args []string, listen bool) ([]app.Source, func(), error) {
	if len(args) == 0 {
		if listen {
			return nil, func() {}, nil
		}
		return []app.Source{{Name: "stdin", Reader: os.Stdin}}, func() {}, nil
	}

	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	sources := make([]app.Source, 0, len(args))
	for _, path := range args {
		if path == "-" {
			sources = append(sources, app.Source{Name: "stdin", Reader: os.Stdin})
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("failed to open %s: %w", path, err)
		}
		files = append(files, f)
		sources = append(sources, app.Source{Name: path, Reader: f})
	}
	return sources, closeAll, nil
}
