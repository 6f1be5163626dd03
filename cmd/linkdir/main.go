package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"linkdir/internal/adapters/browser"
	"linkdir/internal/adapters/dataset"
	"linkdir/internal/adapters/tui"
	"linkdir/internal/adapters/tui/views"
	"linkdir/internal/config"
	"linkdir/internal/domain"
	"linkdir/internal/logging"
	"linkdir/internal/scroll"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	source := flag.String("source", "", "dataset to browse (YAML, JSON, SQLite or bookmark HTML)")
	flag.Parse()

	if err := run(*configPath, *source); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, source string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if source != "" {
		cfg.Source = config.ExpandHome(source)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	src, closeSource, err := dataset.Open(cfg.Source, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	logger.Info("starting linkdir",
		zap.String("source", string(dataset.KindOf(cfg.Source))),
		zap.String("path", cfg.Source),
		zap.Int("pageSize", cfg.PageSize))

	app := tui.NewApp(src, views.DirectoryOptions{
		Engine:   domain.NewEngine(domain.ParseLocale(cfg.Locale)),
		PageSize: cfg.PageSize,
		Scroll: scroll.Options{
			Delay:    cfg.Scroll.Delay,
			Cooldown: cfg.Scroll.Cooldown,
		},
		Margin: cfg.Scroll.Margin,
		Reveal: views.RevealOptions{
			Base:     cfg.Reveal.Base,
			Step:     cfg.Reveal.Step,
			MaxIndex: cfg.Reveal.MaxIndex,
		},
		Opener:    browser.NewOpener(logger),
		Clipboard: browser.SystemClipboard{},
		Logger:    logger,
	})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
