package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/apidocswagger/internal/cliutil"
	"github.com/erraggy/apidocswagger/internal/httpserver"
)

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	Addr    string
	MaxBody int64
	Verbose bool
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
// Flag defaults come from the APIDOCSWAGGER_HTTP_* environment.
func SetupServeFlags(cfg httpserver.Config) (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.StringVar(&flags.Addr, "addr", cfg.Addr, "listen address (env APIDOCSWAGGER_HTTP_ADDR)")
	fs.Int64Var(&flags.MaxBody, "max-body", cfg.MaxBodyBytes, "maximum request body in bytes (env APIDOCSWAGGER_HTTP_MAX_BODY)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidocswagger serve [flags]\n\n")
		cliutil.Writef(fs.Output(), "Serve conversions over HTTP.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nRoutes:\n")
		cliutil.Writef(fs.Output(), "  POST /v1/convert   api_data.json in, Swagger 2.0 out\n")
		cliutil.Writef(fs.Output(), "  POST /v1/validate  Swagger 2.0 in, validation report out\n")
		cliutil.Writef(fs.Output(), "  GET  /healthz      liveness\n")
		cliutil.Writef(fs.Output(), "  GET  /metrics      Prometheus metrics\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  apidocswagger serve -addr :8080\n")
		cliutil.Writef(fs.Output(), "  curl --data-binary @doc/api_data.json 'localhost:8080/v1/convert?format=yaml'\n")
	}

	return fs, flags
}

// HandleServe executes the serve command. It blocks until SIGINT or SIGTERM.
func HandleServe(args []string) error {
	cfg := httpserver.LoadConfig()
	fs, flags := SetupServeFlags(cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("serve command takes no arguments")
	}
	if flags.MaxBody <= 0 {
		return fmt.Errorf("max-body must be positive")
	}
	cfg.Addr = flags.Addr
	cfg.MaxBodyBytes = flags.MaxBody

	srv, err := httpserver.New(cfg, NewLogger(os.Stderr, flags.Verbose).With("component", "http"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
