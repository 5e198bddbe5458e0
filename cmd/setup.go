package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"commander/agent"
	"commander/config"
	"commander/scrape"
	"commander/store"
)

// app wires the configured collaborators for one CLI invocation
type app struct {
	logger     hclog.Logger
	cfg        *config.Config
	history    store.HistoryStore
	researcher *agent.Researcher
	commander  *agent.Commander
	closers    []io.Closer
}

// newApp loads the config at configPath and builds the history store, the
// downloader, the researcher and the commander from it.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.HclogLevel()
	if logLevel != "" {
		level = hclog.LevelFromString(strings.TrimSpace(logLevel))
		if level == hclog.NoLevel {
			return nil, fmt.Errorf("invalid log level '%s'", logLevel)
		}
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "commander",
		Output: os.Stderr,
		Level:  level,
	})
	logger.Debug("loaded config", "path", configPath, "files", cfg.Files)

	a := &app{logger: logger, cfg: cfg}

	history, err := store.NewHistory(ctx, &cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	a.history = history
	a.closers = append(a.closers, history)

	client := scrape.NewHTTPClient(scrape.ClientOptions{
		UserAgent:         cfg.Fetcher.UserAgent,
		Timeout:           cfg.Fetcher.TimeoutDuration(),
		RequestsPerSecond: cfg.Fetcher.RequestsPerSecond,
		MaxPageBytes:      cfg.Fetcher.MaxPageBytes,
		Logger:            logger.Named("scrape"),
	})

	var downloader scrape.Downloader = client
	if cfg.Fetcher.Backend == "browser" {
		browser, err := scrape.NewBrowserDownloader(scrape.BrowserOptions{
			BrowserType: cfg.Fetcher.BrowserType,
			Headless:    cfg.Fetcher.IsHeadless(),
			Timeout:     cfg.Fetcher.TimeoutDuration(),
			Logger:      logger.Named("browser"),
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		downloader = browser
		a.closers = append(a.closers, browser)
	}

	a.researcher = agent.NewResearcher(agent.ResearcherOptions{
		Downloader: downloader,
		Pages:      client,
		Limits: agent.ResearcherLimits{
			MaxContentChars: cfg.Researcher.MaxContentChars,
			MaxLinks:        cfg.Researcher.MaxLinks,
			TopWords:        cfg.Researcher.TopWords,
			LinkTimeout:     cfg.Researcher.LinkTimeoutDuration(),
		},
		Logger: logger.Named("researcher"),
	})

	a.commander = agent.NewCommander(agent.CommanderOptions{
		Name:    commanderName,
		Version: commanderVersion(),
		Agents:  []agent.AgentBinding{agent.ResearcherBinding(a.researcher)},
		History: history,
		Logger:  logger.Named("commander"),
	})
	return a, nil
}

// Close releases the browser and the history store
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("error closing", "error", err)
		}
	}
}

func mustApp(ctx context.Context) *app {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

func commanderVersion() string {
	if Version == "dev" {
		return agent.DefaultCommanderVersion
	}
	return strings.TrimPrefix(Version, "v")
}
