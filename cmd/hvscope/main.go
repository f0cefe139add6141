package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/FumiHubCNS/hvscope/internal/adapters/observability"
	"github.com/FumiHubCNS/hvscope/internal/adapters/render"
	"github.com/FumiHubCNS/hvscope/pkg/hvscope"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var err error

	switch cmd {
	case "plot":
		err = plotCommand(os.Args[2:])
	case "dump":
		err = dumpCommand(os.Args[2:])
	case "validate":
		err = validateCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatalf("hvscope %s: %v", cmd, err)
	}
}

// runFlags is the flag set shared by plot and dump.
type runFlags struct {
	cfgPath string
	module  string
	filter  string
	input   string
	every   int
	out     string
	format  string
}

func bindRunFlags(fs *flag.FlagSet) *runFlags {
	rf := &runFlags{}
	fs.StringVar(&rf.cfgPath, "config", "./parameters.toml", "Path to the parameters file")
	fs.StringVar(&rf.module, "type", "caen", "Module type (caen|iseg)")
	fs.StringVar(&rf.filter, "filter", "mini-caen0", "Named module filter from the parameters file")
	fs.StringVar(&rf.input, "input", "", "Database path overriding the configured default")
	fs.IntVar(&rf.every, "every", 0, "Plot every Nth point per channel (0 = config default)")
	fs.StringVar(&rf.out, "out", "", "Output file path (default derived from filter and format)")
	return rf
}

func plotCommand(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	rf := bindRunFlags(fs)
	fs.StringVar(&rf.format, "format", "", "Chart format (html|png, default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in, module, err := setup(rf)
	if err != nil {
		return err
	}

	cfg := in.Config()
	format := rf.format
	if format == "" {
		format = cfg.Render.Format
	}
	every := rf.every
	if every <= 0 {
		every = cfg.Render.Every
	}
	out := rf.out
	if out == "" {
		out = cfg.Render.Out
	}
	if out == "" {
		out = fmt.Sprintf("%s_%s.%s", rf.filter, rf.module, format)
	}

	var renderer hvscope.Renderer
	switch format {
	case "html":
		renderer = render.NewHTMLRenderer(out, every)
	case "png":
		renderer = render.NewPNGRenderer(out, every)
	default:
		return fmt.Errorf("unsupported chart format %q", format)
	}

	if err := in.Render(context.Background(), module, rf.filter, rf.input, renderer); err != nil {
		return err
	}
	fmt.Printf("chart written to %s\n", out)
	return nil
}

func dumpCommand(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	rf := bindRunFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	in, module, err := setup(rf)
	if err != nil {
		return err
	}

	every := rf.every
	if every <= 0 {
		every = in.Config().Render.Every
	}

	var w io.Writer = os.Stdout
	if rf.out != "" {
		f, err := os.Create(rf.out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return in.Render(context.Background(), module, rf.filter, rf.input, render.NewCSVRenderer(w, every))
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./parameters.toml", "Path to the parameters file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := hvscope.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good\n", *cfgPath)
	return nil
}

func setup(rf *runFlags) (*hvscope.Inspection, hvscope.ModuleType, error) {
	module, err := hvscope.ParseModuleType(rf.module)
	if err != nil {
		return nil, module, err
	}

	in, err := hvscope.Conf(rf.cfgPath, hvscope.WithObservability(observability.NewPromObs()))
	if err != nil {
		return nil, module, fmt.Errorf("load config: %w", err)
	}
	return in, module, nil
}

func printUsage() {
	fmt.Printf(`hvscope - power-supply monitor log inspection

Usage:
  hvscope <command> [flags]

Commands:
  plot       Decode the monitor log and write voltage/current charts
  dump       Decode the monitor log and write the channel table as CSV
  validate   Load and check the parameters file without touching the store

Examples:
  hvscope plot -config ./parameters.toml -type caen -filter mini-caen0
  hvscope plot -type iseg -filter iseg0 -format png -every 10
  hvscope dump -filter mini-caen0 -out table.csv
  hvscope validate -config ./parameters.toml
`)
}
