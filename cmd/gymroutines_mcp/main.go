// Package main runs the gymroutines MCP server over stdio (for local MCP clients).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/gymroutines/internal/config"
	gymroutinesmcp "github.com/2beens/gymroutines/internal/gymstats/mcp"
	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
	"github.com/2beens/gymroutines/internal/storage"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol, logs go to stderr
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("stats location: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	secrets := config.SecretsFromEnv()
	secrets.HoneycombEnabled = false
	kv, err := storage.Open(ctx, cfg.StorageParams(secrets, nil))
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer kv.Close()

	routinesStore := routines.NewStore(ctx, kv)
	logsStore := workoutlogs.NewStore(ctx, kv)

	contextService := gymroutinesmcp.NewContextService(routinesStore, logsStore, loc)
	server := gymroutinesmcp.NewServer(contextService)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Print(err)
	}
}
