// Command lineup-mcp serves the player catalog and formation templates to
// MCP clients over stdio.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	appformations "github.com/preston-bernstein/lineup-service/internal/app/formations"
	appplayers "github.com/preston-bernstein/lineup-service/internal/app/players"
	"github.com/preston-bernstein/lineup-service/internal/config"
	"github.com/preston-bernstein/lineup-service/internal/ingest"
	"github.com/preston-bernstein/lineup-service/internal/logging"
	"github.com/preston-bernstein/lineup-service/internal/store"
)

const (
	appName    = "lineup-mcp"
	appVersion = "dev"

	instructions = "This server searches a football player catalog and lists pitch formations. " +
		"Use search_players to find players by name, club, nationality, league or position, " +
		"get_player to fetch one by id, and list_formations to browse formation templates."
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		Service: appName,
		Version: appVersion,
		Stderr:  true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	players := appplayers.NewService(store.NewCorpusStore(), ingest.NewLoader(cfg.DataDir, logger), appplayers.Options{
		CacheSize: cfg.CacheSize,
		Logger:    logger,
	})
	if _, err := players.Reload(ctx); err != nil {
		logging.Warn(logger, "starting with an empty player corpus", "error", err)
	}

	server := newServer(players, appformations.NewService())
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logging.Error(logger, "mcp server stopped", err)
		os.Exit(1)
	}
}

func newServer(players playerCatalog, formations formationCatalog) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    appName,
		Version: appVersion,
	}, &mcp.ServerOptions{Instructions: instructions})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_players",
		Description: "Search players by free text and optional club, nationality, league and position filters. Results are ranked and paged.",
	}, searchPlayers(players))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_player",
		Description: "Fetch a single player by id",
	}, getPlayer(players))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_formations",
		Description: "List formation templates, optionally restricted to one category (attacking, balanced, defensive)",
	}, listFormations(formations))

	return server
}
