package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"journey_poster/internal/cli"
	"journey_poster/internal/config"
	"journey_poster/internal/console"
	"journey_poster/internal/events"
	"journey_poster/internal/linkedin"
	"journey_poster/internal/llm/ollama"
	"journey_poster/internal/service"
	"journey_poster/internal/storage/jsonfile"
)

const defaultLogFile = "poster.log"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	forceMock := flag.Bool("mock", false, "use the mock publisher even when credentials are set")
	autoApprove := flag.Bool("auto-approve", false, "publish generated posts without review")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [schedule|post|status]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	command := flag.Arg(0)

	// Setup logger
	logger := setupLogger("info", os.Stdout)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Interactive sessions log to a file so records do not interleave with
	// the console.
	logOut := io.Writer(os.Stdout)
	if command == "" || cfg.Data.LogPath() != "" {
		logPath := cfg.Data.LogPath()
		if logPath == "" {
			logPath = filepath.Join(cfg.Data.Dir, defaultLogFile)
		}
		f, err := openLogFile(logPath)
		if err != nil {
			logger.Error("failed to open log file", "path", logPath, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger = setupLogger(cfg.LogLevel, logOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	store, err := jsonfile.Open(jsonfile.Config{
		Dir:            cfg.Data.Dir,
		CurriculumPath: cfg.Data.CurriculumPath(),
		HistoryPath:    cfg.Data.HistoryPath(),
		StatePath:      cfg.Data.StatePath(),
		TotalDays:      cfg.Journey.TotalDays,
	}, logger)
	if err != nil {
		logger.Error("failed to open progress store", "error", err)
		fmt.Fprintf(os.Stderr, "cannot open data files: %v\n", err)
		os.Exit(1)
	}

	llm := ollama.New(ollama.Config{
		BaseURL:     cfg.Ollama.BaseURL,
		Model:       cfg.Ollama.Model,
		Temperature: cfg.Ollama.Temperature,
		Timeout:     cfg.Ollama.Timeout,
	}, logger)

	if err := checkModel(ctx, llm, logger); err != nil {
		logger.Error("generation backend unavailable", "base_url", cfg.Ollama.BaseURL, "error", err)
		fmt.Fprintf(os.Stderr, "cannot reach Ollama at %s: %v\n", cfg.Ollama.BaseURL, err)
		os.Exit(1)
	}

	poster := newPoster(ctx, cfg.LinkedIn, *forceMock, logger)

	// Initialize optional event fan-out
	var eventPublisher service.EventPublisher
	if cfg.Events.Enabled() {
		rabbitMQ, err := events.NewRabbitMQ(events.Config{
			URL:        cfg.Events.URL,
			Exchange:   cfg.Events.Exchange,
			RoutingKey: cfg.Events.RoutingKey,
			QueueName:  cfg.Events.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		eventPublisher = rabbitMQ
	}

	con := console.New(os.Stdin, os.Stdout, cfg.Journey.TotalDays)

	generator := service.NewGenerator(llm, store, logger, cfg.Journey, cfg.Ollama.Retry)
	gate := service.NewApprovalGate(con, store, logger, service.UnrecognizedPolicy(cfg.Journey.OnUnrecognized))
	publisher := service.NewPublisher(poster, store, eventPublisher, logger)
	orchestrator := service.NewOrchestrator(store, generator, gate, publisher, logger, cfg.Journey.MaxRegenerations)

	app := cli.New(store, orchestrator, generator, con, logger, cli.Options{
		TotalDays:   cfg.Journey.TotalDays,
		AutoApprove: *autoApprove || cfg.Schedule.AutoApprove,
		PostingTime: cfg.Schedule.PostingTime,
		Location:    cfg.Schedule.Location(),
		Mock:        poster.IsMock(),
		Model:       llm.Model(),
	})

	logger.Info("starting journey poster",
		"command", command,
		"model", llm.Model(),
		"mock_publisher", poster.IsMock(),
		"posting_time", cfg.Schedule.PostingTime,
		"timezone", cfg.Schedule.Timezone,
	)

	if command != "" {
		err = app.Execute(ctx, command)
	} else {
		err = app.Interactive(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("poster error", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// checkModel fails only when Ollama cannot be reached; a missing model is
// reported but not fatal.
func checkModel(ctx context.Context, llm *ollama.Client, logger *slog.Logger) error {
	ok, installed, err := llm.HasModel(ctx)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn("configured model is not installed", "model", llm.Model(), "installed", installed)
		fmt.Fprintf(os.Stderr, "model %q not found in Ollama; run: ollama pull %s\n", llm.Model(), llm.Model())
	}
	return nil
}

func newPoster(ctx context.Context, cfg config.LinkedInConfig, forceMock bool, logger *slog.Logger) service.Poster {
	if forceMock || !cfg.HasCredentials() {
		logger.Info("using mock publisher", "forced", forceMock)
		return linkedin.NewMock(logger)
	}

	client := linkedin.New(linkedin.Config{
		BaseURL:     cfg.BaseURL,
		AccessToken: cfg.AccessToken,
		PersonID:    cfg.PersonID,
		Visibility:  cfg.Visibility,
		Timeout:     cfg.Timeout,
	}, logger)

	profile, err := client.VerifyCredentials(ctx)
	if err != nil {
		logger.Warn("linkedin credential check failed", "error", err)
		fmt.Fprintf(os.Stderr, "warning: LinkedIn credentials could not be verified: %v\n", err)
		return client
	}
	logger.Info("linkedin credentials verified", "profile_id", profile.ID, "name", profile.FirstName+" "+profile.LastName)
	return client
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

func setupLogger(level string, out io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(out, opts)
	return slog.New(handler)
}
