package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/magic-mcp/internal/magicsquare"
	"github.com/roivaz/magic-mcp/internal/mcp/tools/types"
)

type GeneratorService interface {
	Generate(ctx context.Context, size int, debug bool) (magicsquare.Result, error)
}

type GenerateMagicSquareHandler struct {
	Service GeneratorService
}

func (h *GenerateMagicSquareHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	size, err := parseSizeArgument(args["size"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	debug, _ := args["debug"].(bool)

	result, err := h.Service.Generate(ctx, size, debug)
	if err != nil {
		// Upstream failures surface as in-band tool errors so the caller
		// sees which kind occurred; anything else is a protocol error.
		if errors.Is(err, magicsquare.ErrInvalidSize) ||
			errors.Is(err, magicsquare.ErrUnavailable) ||
			errors.Is(err, magicsquare.ErrMalformed) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, err
	}

	response := types.MagicSquareResult{
		Size:     result.Size,
		Square:   result.Square,
		Metadata: result.Metadata,
	}
	return mcp.NewToolResultText(string(mustMarshal(response))), nil
}
