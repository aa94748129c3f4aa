package main

import (
	"flag"
	"fmt"
	"os"

	"shark/internal/config"
	"shark/internal/schema"
	"shark/internal/service"
	"shark/internal/storage"
	"shark/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load config: %v", err)
	}

	switch flag.Arg(0) {
	case "":
		runTUI(cfg)
	case "check":
		os.Exit(runCheck(cfg))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: shark [command]

Commands:
  (none)   start the terminal UI
  check    validate the word and archive files

Settings come from shark.yaml, .env and the environment (see STORAGE_*, LOG_PATH).
`)
}

func runTUI(cfg *config.Config) {
	logger, err := newFileLogger(cfg.LogPath)
	if err != nil {
		fatal("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	stores, err := storage.Open(cfg, logger)
	if err != nil {
		fatal("Failed to open storage: %v", err)
	}
	defer stores.Close()

	words := service.NewWordService(stores.Words, stores.Archive, logger)
	m := tui.NewModel(words, cfg.RedisplayInterval, logger)

	logger.Info("Starting terminal UI", zap.Duration("redisplay_interval", cfg.RedisplayInterval))

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("TUI error", zap.Error(err))
		fatal("TUI error: %v", err)
	}
}

func runCheck(cfg *config.Config) int {
	if cfg.Storage.Driver != config.DriverFile {
		fmt.Printf("storage driver is %s, nothing to check\n", cfg.Storage.Driver)
		return 0
	}

	checker, err := schema.NewChecker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shark: %v\n", err)
		return 1
	}

	ok := schema.WriteReports(os.Stdout,
		checker.CheckRepository(cfg.Storage.RepositoryPath),
		checker.CheckArchive(cfg.Storage.ArchivePath),
	)
	if !ok {
		return 1
	}
	return 0
}

// newFileLogger logs to path so output never draws over the UI
func newFileLogger(path string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "shark: "+format+"\n", args...)
	os.Exit(1)
}
