package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the window queries",
	Long: `Start a Model Context Protocol (MCP) server that exposes the active-window
queries as tools. AI agents can call them directly without shell overhead.

Tools:
  active_window    The frontmost window
  open_windows     Every on-screen window

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  active-window serve
  active-window serve --transport streamable-http --port 8080
  active-window serve --cache-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Result cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg := MCPConfig{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}

	enumerator, err := newEnumerator(appConfig)
	if err != nil {
		return err
	}

	appLogger.Info("starting MCP server", "transport", cfg.Transport, "port", cfg.Port, "cache_ttl", cfg.CacheTTL)
	return newMCPServer(enumerator, cfg).serve(cfg)
}
