/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/josephgoksu/Questifier/internal/config"
	"github.com/josephgoksu/Questifier/internal/llm"
	mcpfmt "github.com/josephgoksu/Questifier/internal/mcp"
	"github.com/josephgoksu/Questifier/types"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI assistants can turn
tasks into quests.

The server runs over stdin/stdout and provides one tool:
- generate-quest: task title, notes, checklist and difficulty in, quest out

The server will run until the client disconnects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer(ctx context.Context) error {
	llmCfg, err := config.LoadLLMConfig()
	if err != nil {
		return err
	}
	rt, err := newQuestRuntime(ctx, llmCfg)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	server := newMCPServer(rt)

	// Run the server over stdin/stdout
	if err := server.Run(ctx, mcp.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func newMCPServer(rt *questRuntime) *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "questifier",
		Version: version,
	}
	server := mcp.NewServer(impl, &mcp.ServerOptions{})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate-quest",
		Description: "Turn a task into an RPG boss-battle quest. Takes the task title (required), optional notes, checklist items and difficulty (Trivial, Easy, Medium, Hard). Returns the quest with monster stats, lore, rewards and a call to action.",
	}, generateQuestHandler(rt))

	return server
}

// generateQuestHandler runs one generation per call. Each call gets its own
// controller, so concurrent calls never share state.
func generateQuestHandler(rt *questRuntime) mcp.ToolHandlerFor[types.GenerateQuestParams, types.GenerateQuestResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.GenerateQuestParams]) (*mcp.CallToolResultFor[types.GenerateQuestResponse], error) {
		args := params.Arguments
		slog.Debug("mcp tool call", "tool", "generate-quest", "todos", len(args.Todos), "difficulty", args.Difficulty)

		input, err := buildTaskInput(args.Title, args.Notes, args.Todos, args.Difficulty)
		if err != nil {
			return mcpErrorResponse(types.NewMCPError(types.CodeInvalidInput, err.Error(), nil))
		}

		quest, err := rt.NewApp().Run(ctx, input)
		if err != nil {
			ge := llm.AsGenerationError(err)
			return mcpErrorResponse(types.NewMCPError(types.CodeGenerationFailed, ge.UserMessage(), map[string]interface{}{
				"kind":     string(ge.Kind),
				"provider": ge.Provider,
			}))
		}

		return &mcp.CallToolResultFor[types.GenerateQuestResponse]{
			Content:           []mcp.Content{&mcp.TextContent{Text: mcpfmt.FormatQuest(quest)}},
			StructuredContent: types.GenerateQuestResponse{Quest: quest, Level: quest.Level()},
		}, nil
	}
}

// mcpErrorResponse wraps a tool failure in a result with IsError set.
func mcpErrorResponse(e *types.MCPError) (*mcp.CallToolResultFor[types.GenerateQuestResponse], error) {
	slog.Debug("mcp tool failed", "tool", "generate-quest", "code", e.Code)
	return &mcp.CallToolResultFor[types.GenerateQuestResponse]{
		Content: []mcp.Content{&mcp.TextContent{Text: mcpfmt.FormatError(e)}},
		IsError: true,
	}, nil
}
