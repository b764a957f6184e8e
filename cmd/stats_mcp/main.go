// Package main runs the fittrack MCP server over stdio (for local MCP clients).
// The same MCP server is also mounted on the backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/app"
	"github.com/2beens/fittrack/internal/config"
	fitnessmcp "github.com/2beens/fittrack/internal/fitness/mcp"
	"github.com/2beens/fittrack/internal/logging"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	closeLogs := logging.Setup(logging.LoggerSetupParams{
		Console:       os.Stderr,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})
	defer closeLogs()

	ctx := context.Background()
	backend, err := app.OpenBackend(ctx, cfg, app.BackendParams{
		RedisPassword:    os.Getenv("FITTRACK_REDIS_PASS"),
		PostgresUser:     os.Getenv("FITTRACK_PG_USER"),
		PostgresPassword: os.Getenv("FITTRACK_PG_PASS"),
	})
	if err != nil {
		log.Fatalf("open storage backend: %v", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Errorf("close storage backend: %v", err)
		}
	}()

	state := app.NewState(backend.Provider)
	if err := state.Load(ctx); err != nil {
		log.Fatalf("load state: %v", err)
	}

	server := fitnessmcp.NewServer(state)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Error(err)
	}
}
