// Package mcp implements the Model Context Protocol server for zmanim
// queries. It registers six read-only tools that compute Jewish prayer times
// for a location and date via the external hebcal calculation library and
// render them as markdown or JSON. The server speaks stdio by default and
// optionally HTTP with StreamableHTTP or SSE transports.
package mcp

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/zmanim/mcp/internal/config"
	"github.com/zmanim/mcp/internal/hebcal"
	"github.com/zmanim/mcp/internal/logging"
	"github.com/zmanim/mcp/internal/version"
)

// Config carries the server dependencies. Tests substitute the Engine and
// logger; production wiring comes from DefaultConfig.
type Config struct {
	Engine              Engine
	DefaultCandleOffset int
	Logger              logging.Logger
}

// DefaultConfig wires the hebcal-backed calculator with settings from the
// process configuration.
func DefaultConfig() Config {
	return Config{
		Engine:              hebcal.NewCalculator(),
		DefaultCandleOffset: config.DefaultCandleLightingOffset(),
		Logger:              logging.New(logging.DefaultLogger(config.LogLevel())).WithName("mcp"),
	}
}

// CreateServer creates the MCP server instance and registers the six zmanim
// tools. Registration happens once; handlers share no mutable state, so the
// transport is free to multiplex invocations.
func CreateServer(cfg Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Zmanim MCP Server",
		version.GetVersion(),
		server.WithToolCapabilities(true),
	)

	zt := NewZmanimTool(cfg.Engine, cfg.DefaultCandleOffset, cfg.Logger)
	for _, def := range toolDefs() {
		s.AddTool(def.tool, zt.makeHandler(def))
	}
	return s
}

// InitServer starts the MCP server on stdio. This is the default mode: the
// protocol owns stdout, all logging goes to stderr.
func InitServer(cfg Config) error {
	return server.ServeStdio(CreateServer(cfg))
}

// RunHTTPServer serves the MCP server over HTTP on addr, using SSE when
// useSSE is set and StreamableHTTP otherwise.
func RunHTTPServer(cfg Config, addr string, useSSE bool) error {
	s := CreateServer(cfg)

	if useSSE {
		cfg.Logger.Info("serving MCP over HTTP", "transport", "sse", "addr", addr, "endpoint", "/sse")
		sseServer := server.NewSSEServer(s,
			server.WithSSEEndpoint("/sse"),
			server.WithMessageEndpoint("/message"),
			server.WithBaseURL(fmt.Sprintf("http://%s", addr)),
		)
		return sseServer.Start(addr)
	}

	cfg.Logger.Info("serving MCP over HTTP", "transport", "streamable-http", "addr", addr, "endpoint", "/mcp")
	httpServer := server.NewStreamableHTTPServer(s,
		server.WithEndpointPath("/mcp"),
	)
	return httpServer.Start(addr)
}

// NormalizeAddress fills in the configured host and port when addr omits
// them: "" becomes host:port, ":9000" gets the host, "example" gets the
// port.
func NormalizeAddress(addr, defaultHost string, defaultPort int) string {
	port := strconv.Itoa(defaultPort)
	if addr == "" {
		return net.JoinHostPort(defaultHost, port)
	}

	host, p, err := net.SplitHostPort(addr)
	if err != nil {
		if strings.HasPrefix(addr, ":") {
			return net.JoinHostPort(defaultHost, strings.TrimPrefix(addr, ":"))
		}
		if !strings.Contains(addr, ":") {
			return net.JoinHostPort(addr, port)
		}
		return addr
	}
	if host == "" {
		host = defaultHost
	}
	return net.JoinHostPort(host, p)
}
