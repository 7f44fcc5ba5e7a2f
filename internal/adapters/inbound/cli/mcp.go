package cli

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/menurota/menurota/internal/adapters/inbound/mcp"
	configloader "github.com/menurota/menurota/internal/adapters/outbound/config"
	"github.com/menurota/menurota/internal/adapters/outbound/store"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the menurota MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start menurota MCP server (stdio)",
		Long:  "Start the menurota MCP server using stdio transport. This lets AI assistants manage the catalogue, generate plans, and assess variety.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configloader.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
				cfg.DataDir = v
			}
			if v, _ := cmd.Flags().GetString("user"); v != "" {
				cfg.User = v
			}
			if cfg.DataDir == "" {
				cfg.DataDir = store.DefaultDir()
			}

			s := mcpadapter.NewMenurotaMCPServer(cfg)
			return server.ServeStdio(s)
		},
	}
}
