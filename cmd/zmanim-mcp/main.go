// Package main provides the entry point for the zmanim MCP server.
//
// By default the server communicates over stdio, the standard transport for
// MCP hosts that spawn the process directly. With --http it serves the same
// tools over HTTP (StreamableHTTP, or SSE with --sse) for hosts that connect
// over the network instead.
package main

import (
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zmanim/mcp/internal/config"
	"github.com/zmanim/mcp/internal/mcp"
	"github.com/zmanim/mcp/internal/version"
)

func main() {
	root := &cobra.Command{
		Use:     "zmanim-mcp",
		Short:   "MCP server exposing Jewish prayer time (zmanim) tools",
		Version: version.GetVersion(),
		RunE:    run,
	}

	root.PersistentFlags().String(config.KeyLogLevel, "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String(config.KeyHTTPHost, "127.0.0.1", "HTTP host for --http mode")
	root.PersistentFlags().Int(config.KeyHTTPPort, 8080, "HTTP port for --http mode")
	root.PersistentFlags().Int(config.KeyCandleOffset, 18, "default candle-lighting offset in minutes before sunset")
	root.Flags().String("http", "", "serve over HTTP on this address instead of stdio (empty address uses http_host:http_port)")
	root.Flags().Bool("sse", false, "use the SSE transport (requires --http)")
	root.Flags().Lookup("http").NoOptDefVal = "default"

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("zmanim-mcp: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	httpAddr, _ := cmd.Flags().GetString("http")
	useSSE, _ := cmd.Flags().GetBool("sse")
	if useSSE && httpAddr == "" {
		return errors.New("--sse requires --http")
	}

	cfg := mcp.DefaultConfig()

	if httpAddr != "" {
		if httpAddr == "default" {
			httpAddr = net.JoinHostPort(config.HTTPHost(), strconv.Itoa(config.HTTPPort()))
		}
		addr := mcp.NormalizeAddress(httpAddr, config.HTTPHost(), config.HTTPPort())
		return mcp.RunHTTPServer(cfg, addr, useSSE)
	}

	if err := mcp.InitServer(cfg); err != nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}
