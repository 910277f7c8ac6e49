package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/complymap/complymap/pkg/mcpserver"
	"github.com/complymap/complymap/pkg/ui"
)

// runMCP starts the MCP server over stdio, the transport IDE and
// assistant integrations expect. The banner goes to stderr so it
// never corrupts the protocol stream on stdout.
func runMCP() {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cf := registerCommon(fs)
	fs.Parse(os.Args[2:])

	cfg := loadConfig(cf)
	e := buildEngine(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.PrintInfo("complymap MCP server listening on stdio")
	srv := mcpserver.New(e)
	if err := srv.RunStdio(ctx); err != nil && ctx.Err() == nil {
		fatal(err.Error())
	}
}
