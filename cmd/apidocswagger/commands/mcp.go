package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/apidocswagger/internal/cliutil"
	"github.com/erraggy/apidocswagger/internal/mcpserver"
)

// HandleMCP runs the MCP server over stdio until the client disconnects.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidocswagger mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the Model Context Protocol server over stdio.\n")
		cliutil.Writef(fs.Output(), "Tools: convert, validate, resolve_field.\n")
		cliutil.Writef(fs.Output(), "Defaults are read from APIDOCSWAGGER_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
