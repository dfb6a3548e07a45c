// Command orca supervises a set of scripts and renders their live
// status as an in-place-updating terminal block.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/veilwork/orca"
	"github.com/veilwork/orca/internal/config"
	"github.com/veilwork/orca/internal/orchestrator"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("orca: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = runMain(args)
	case "version":
		fmt.Println(orca.Version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "orca: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: orca <command> [flags] [scripts...]

Commands:
  run         Run scripts concurrently with a live status block
  version     Print the version
  help        Show this help

Use "orca run -h" for run flags.`)
}

func runMain(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	dir := fs.String("C", "", "working directory (default: current directory)")
	window := fs.Int("window", 0, "output lines retained per task before truncation")
	interval := fs.Duration("interval", 0, "redraw interval")
	_ = fs.Parse(args)

	workdir := *dir
	if workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determining working directory: %w", err)
		}
		workdir = wd
	}

	loaded, err := config.Load(workdir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := loaded.Config

	scripts := fs.Args()
	if len(scripts) == 0 {
		scripts = cfg.Scripts
	}
	if len(scripts) == 0 {
		return fmt.Errorf("nothing to run: pass scripts as arguments or list them in .orca")
	}

	opts := orchestrator.Options{
		Scripts:     scripts,
		Window:      cfg.WindowSize(),
		Interval:    cfg.RenderInterval(),
		Interpreter: cfg.Interpreter,
		Dir:         loaded.Root,
		Out:         os.Stdout,
	}
	if *window > 0 {
		opts.Window = *window
	}
	if *interval > 0 {
		opts.Interval = *interval
	}
	if *dir != "" {
		opts.Dir = workdir
	}

	sum, err := orchestrator.Run(context.Background(), opts)
	if err != nil {
		return err
	}
	if sum.Failed > 0 {
		os.Exit(1)
	}
	return nil
}
