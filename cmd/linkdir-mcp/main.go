package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"linkdir/internal/adapters/dataset"
	mcpadapter "linkdir/internal/adapters/mcp"
	"linkdir/internal/config"
	"linkdir/internal/domain"
	"linkdir/internal/logging"
	"linkdir/internal/ports"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	sourceFlag := flag.String("source", "", "dataset to serve (overrides the config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("linkdir-mcp: %v", err)
	}
	if *sourceFlag != "" {
		cfg.Source = config.ExpandHome(*sourceFlag)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("linkdir-mcp: %v", err)
	}
	defer logger.Sync()

	src, closeSource, err := dataset.Open(cfg.Source, logger)
	if err != nil {
		log.Fatalf("linkdir-mcp: %v", err)
	}
	defer closeSource()

	mcpServer := server.NewMCPServer(
		"linkdir-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	engine := domain.NewEngine(domain.ParseLocale(cfg.Locale))
	mcpadapter.RegisterReadTools(mcpServer, src, engine, cfg.PageSize)

	if store, ok := src.(ports.LinkStore); ok {
		mcpadapter.RegisterWriteTools(mcpServer, store, logger)
	}

	logger.Info("serving mcp over stdio",
		zap.String("source", string(dataset.KindOf(cfg.Source))),
		zap.String("path", cfg.Source))

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("mcp server stopped", zap.Error(err))
		log.Printf("linkdir-mcp: %v", err)
	}
}
