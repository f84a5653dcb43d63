package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/magic-mcp/internal/config"
	"github.com/roivaz/magic-mcp/internal/logging"
	"github.com/roivaz/magic-mcp/internal/magicsquare"
	"github.com/roivaz/magic-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.DefaultLogger(config.LogLevel())

	client := magicsquare.NewClient(magicsquare.Config{
		APIURL:  config.APIURL(),
		Timeout: config.APITimeout(),
		Logger:  logging.New(baseLogger.WithName("magicsquare")),
	})

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"generate_magic_square": &tools.GenerateMagicSquareHandler{Service: client},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
