package cmd

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/active-window/internal/output"
	"github.com/mj1618/active-window/internal/version"
	"github.com/mj1618/active-window/internal/windows"
)

// windowQuerier runs one enumeration. *windows.Enumerator implements it.
type windowQuerier interface {
	Run(ctx context.Context, opts windows.Options) (windows.Result, error)
}

// mcpServer wraps the MCP server with the window enumerator and cache.
type mcpServer struct {
	windows windowQuerier
	cache   *mcpResultCache
	queryMu sync.Mutex
	mcp     *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server exposing the window queries.
func newMCPServer(querier windowQuerier, cfg MCPConfig) *mcpServer {
	s := &mcpServer{
		windows: querier,
		cache:   newMCPResultCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"active-window",
		version.Version,
	)

	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// active_window
	s.mcp.AddTool(
		mcp.NewTool("active_window",
			mcp.WithDescription("Get the frontmost window: owning app, bounds, window id and, for supported browsers, the active tab's url, title and mode. Returns null when no window qualifies."),
			mcp.WithBoolean("no_accessibility_permission", mcp.Description("Do not require accessibility permission; browser tabs are not read")),
			mcp.WithBoolean("no_screen_recording_permission", mcp.Description("Do not require screen recording permission; window titles are empty")),
		),
		s.handleActiveWindow,
	)

	// open_windows
	s.mcp.AddTool(
		mcp.NewTool("open_windows",
			mcp.WithDescription("List every on-screen window in front-to-back order, with the same fields as active_window. Returns null when no window qualifies."),
			mcp.WithBoolean("no_accessibility_permission", mcp.Description("Do not require accessibility permission; browser tabs are not read")),
			mcp.WithBoolean("no_screen_recording_permission", mcp.Description("Do not require screen recording permission; window titles are empty")),
		),
		s.handleOpenWindows,
	)
}

func (s *mcpServer) handleActiveWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.query(ctx, request, false)
}

func (s *mcpServer) handleOpenWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.query(ctx, request, true)
}

func (s *mcpServer) query(ctx context.Context, request mcp.CallToolRequest, all bool) (*mcp.CallToolResult, error) {
	opts := windows.Options{
		AllWindows:          all,
		SkipAccessibility:   request.GetBool("no_accessibility_permission", false),
		SkipScreenRecording: request.GetBool("no_screen_recording_permission", false),
	}

	s.queryMu.Lock()
	defer s.queryMu.Unlock()

	result, err := s.cache.get(opts, func() (windows.Result, error) {
		return s.windows.Run(ctx, opts)
	})
	if err != nil {
		// Permission errors carry the instructions for the user.
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, result.Value(), output.FormatJSON, false); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
