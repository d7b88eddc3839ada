// Command idtool mints and inspects idtheory identifiers from the shell.
//
// Usage:
//
//	idtool new [-n count] [-tag value]
//	idtool inspect <decimal-id>...
//
// Defaults for -n and -tag can be set through IDTOOL_COUNT and IDTOOL_TAG;
// IDTOOL_VERBOSE=true enables diagnostic logging to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/theory-cloud/idtheory"
	"github.com/theory-cloud/idtheory/pkg/logger"
)

type config struct {
	Count   int   `env:"IDTOOL_COUNT" envDefault:"1"`
	Tag     uint8 `env:"IDTOOL_TAG" envDefault:"0"`
	Verbose bool  `env:"IDTOOL_VERBOSE"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(stderr, "idtool: FAIL: %v\n", err)
		return 2
	}

	if cfg.Verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "idtool: FAIL: %v\n", err)
			return 2
		}
		logger.SetLogger(zl)
		defer func() { _ = zl.Sync() }()
	}

	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "new":
		return runNew(args[1:], cfg, stdout, stderr)
	case "inspect":
		return runInspect(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "idtool: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: idtool new [-n count] [-tag value]")
	fmt.Fprintln(w, "       idtool inspect <decimal-id>...")
}

func runNew(args []string, cfg config, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(stderr)
	count := fs.Int("n", cfg.Count, "number of identifiers to mint")
	tag := fs.Uint("tag", uint(cfg.Tag), "tag byte to embed (0-255)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *count < 1 {
		fmt.Fprintf(stderr, "idtool: FAIL: count must be at least 1, got %d\n", *count)
		return 2
	}
	if *tag > idtheory.MaxTag {
		fmt.Fprintf(stderr, "idtool: FAIL: tag must be 0-%d, got %d\n", idtheory.MaxTag, *tag)
		return 2
	}

	gen := idtheory.New()
	logger.Logger().Debug("minting identifiers",
		zap.Int("count", *count),
		zap.Uint("tag", *tag),
	)
	for i := 0; i < *count; i++ {
		fmt.Fprintln(stdout, gen.NextWithTag(uint8(*tag)))
	}
	return 0
}

func runInspect(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "idtool: FAIL: inspect needs at least one identifier")
		return 2
	}

	for _, arg := range args {
		raw, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "idtool: FAIL: %q is not a decimal identifier\n", arg)
			return 2
		}
		id := idtheory.FromUint64(raw)
		if id.IsNull() {
			fmt.Fprintf(stdout, "%s\tnull\n", id)
			continue
		}
		fmt.Fprintf(stdout, "%s\ttime=%s seq=%d counter=%d tag=%d\n",
			id,
			id.Time().Format(time.RFC3339Nano),
			id.Sequence(),
			id.Counter(),
			id.Tag(),
		)
	}
	return 0
}
