package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mark3labs/mcp-go/server"

	"github.com/heartmarshall/mynotes-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/mynotes-backend/internal/adapter/postgres/category"
	noterepo "github.com/heartmarshall/mynotes-backend/internal/adapter/postgres/note"
	"github.com/heartmarshall/mynotes-backend/internal/config"
	"github.com/heartmarshall/mynotes-backend/internal/service/category"
	"github.com/heartmarshall/mynotes-backend/internal/service/note"
	"github.com/heartmarshall/mynotes-backend/internal/transport/mcp"
	"github.com/heartmarshall/mynotes-backend/internal/transport/middleware"
	"github.com/heartmarshall/mynotes-backend/internal/transport/rest"
)

// NewHandler wires repositories, services and transports over pool and
// returns the root HTTP handler with the middleware chain applied.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, error) {
	txm := postgres.NewTxManager(pool)
	categories := categoryrepo.New(pool)
	notes := noterepo.New(pool)

	categorySvc := category.NewService(logger, categories, cfg.Notes)
	noteSvc := note.NewService(logger, notes, categories, txm, cfg.Notes)

	noteHandler, err := rest.NewNoteHandler(noteSvc, logger)
	if err != nil {
		return nil, err
	}
	categoryHandler, err := rest.NewCategoryHandler(categorySvc, logger)
	if err != nil {
		return nil, err
	}

	routes := rest.Routes{
		Notes:      noteHandler,
		Categories: categoryHandler,
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
	}
	if cfg.MCP.Enabled {
		mcpServer := mcp.NewServer(noteSvc, categorySvc, logger, Version)
		routes.MCP = middleware.Origin("mcp")(server.NewStreamableHTTPServer(mcpServer))
		routes.MCPPath = cfg.MCP.Path
	}

	router := rest.NewRouter(routes)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router), nil
}
