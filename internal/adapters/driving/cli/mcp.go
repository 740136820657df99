package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sp80808/contextual-prompts/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can look up prompts.

Exposes:
  tool      lookup_prompts     rank prompts against a query
  resource  ctxprompts://prompts  the whole dataset as JSON
  prompt    contextual_prompt  the best matching prompt for a query

By default the server talks JSON-RPC over stdio. Use --port to serve
streamable HTTP instead.

Examples:
  ctxprompts mcp serve
  ctxprompts mcp serve --port 8080 --dataset data/awesome-chatgpt-prompts.csv`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	path, err := resolveDataset()
	if err != nil {
		return err
	}

	topN, err := resolveTopN(cmd)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Lookup:      lookupService,
		DatasetPath: path,
		DefaultTopN: topN,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
