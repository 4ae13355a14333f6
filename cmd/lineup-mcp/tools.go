package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/lineup-service/internal/domain/formations"
	"github.com/preston-bernstein/lineup-service/internal/domain/players"
	"github.com/preston-bernstein/lineup-service/internal/search"
)

type playerCatalog interface {
	Search(q search.Query) search.Result
	PlayerByID(id string) (players.Player, bool)
}

type formationCatalog interface {
	All() []formations.Formation
	ByCategory(category string) []formations.Formation
}

type searchPlayersArgs struct {
	Query       string `json:"query,omitempty" jsonschema:"Free text matched against name, club, nationality and league"`
	Club        string `json:"club,omitempty" jsonschema:"Only players whose club contains this text"`
	Nationality string `json:"nationality,omitempty" jsonschema:"Only players whose nationality contains this text"`
	League      string `json:"league,omitempty" jsonschema:"Only players whose league contains this text"`
	Position    string `json:"position,omitempty" jsonschema:"Only players with a position code containing this text, e.g. CB or ST"`
	Page        int    `json:"page,omitempty" jsonschema:"Zero-based page number"`
	Size        int    `json:"size,omitempty" jsonschema:"Page size between 1 and 50, default 20"`
}

func searchPlayers(catalog playerCatalog) mcp.ToolHandlerFor[searchPlayersArgs, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args searchPlayersArgs) (*mcp.CallToolResult, any, error) {
		res := catalog.Search(search.Query{
			Text:        args.Query,
			Club:        args.Club,
			Nationality: args.Nationality,
			League:      args.League,
			Position:    args.Position,
			Page:        args.Page,
			Size:        args.Size,
		})
		return jsonResult(res)
	}
}

type getPlayerArgs struct {
	ID string `json:"id" jsonschema:"Player id"`
}

func getPlayer(catalog playerCatalog) mcp.ToolHandlerFor[getPlayerArgs, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args getPlayerArgs) (*mcp.CallToolResult, any, error) {
		if args.ID == "" {
			return nil, nil, fmt.Errorf("id is required")
		}
		p, ok := catalog.PlayerByID(args.ID)
		if !ok {
			return nil, nil, fmt.Errorf("player not found: %s", args.ID)
		}
		return jsonResult(p)
	}
}

type listFormationsArgs struct {
	Category string `json:"category,omitempty" jsonschema:"Formation category. Leave empty for all formations."`
}

func listFormations(catalog formationCatalog) mcp.ToolHandlerFor[listFormationsArgs, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args listFormationsArgs) (*mcp.CallToolResult, any, error) {
		if args.Category == "" {
			return jsonResult(catalog.All())
		}
		return jsonResult(catalog.ByCategory(args.Category))
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}
