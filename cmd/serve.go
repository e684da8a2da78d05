package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/inflation/server"
	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the report over HTTP" }
func (*serveCmd) Usage() string {
	return `iia serve [-addr <host:port>]

  Serves the HTML report on /, and the analysis as JSON on /api/analysis and
  /api/merged. Every request reads the input files again.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "address to listen on (default from the configuration, "+DefaultAddr+")")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := newLogger(zapcore.InfoLevel)
	defer log.Sync()

	cfg, err := settings()
	if err != nil {
		return invalidConfig(err)
	}
	addr := c.addr
	if addr == "" {
		addr = cfg.Addr
	}

	if !*Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Sources(), cfg.Pair(), log)
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		log.Error("server stopped", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
