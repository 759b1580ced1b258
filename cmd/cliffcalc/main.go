// Command cliffcalc evaluates Clifford algebra products from the command line.
//
//	cliffcalc -algebra pga3 -op mul -left "-0.25,0,-0.7" -right "1,0,0,0.3"
//
// Exit status is 0 on success, 1 when evaluation fails and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/clifford/internal/cli"
	"github.com/katalvlaran/clifford/internal/config"
	"github.com/katalvlaran/clifford/internal/logging"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse("cliffcalc", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "cliffcalc:", err)
		return exitUsage
	}
	log, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "cliffcalc:", err)
		return exitUsage
	}
	if err := cli.Run(ctx, cfg, stdout, log); err != nil {
		log.Error().Err(err).Msg("evaluation failed")
		return exitError
	}

	return exitOK
}
