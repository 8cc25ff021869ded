package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"page-export/internal/config"
	"page-export/internal/db"
	"page-export/internal/export"
	"page-export/internal/helper"
)

const (
	configFilePath = "./configs/config.yaml"
	prompt         = "Enter the fileIds (comma-separated): "
)

type options struct {
	configPath string
	ids        string
	outputDir  string
	format     string
	debug      bool
	dryRun     bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.configPath, "config", configFilePath, "Path to the config file")
	flag.StringVar(&opts.ids, "ids", "", "Comma-separated fileIds; prompts when empty")
	flag.StringVar(&opts.outputDir, "out", "", "Directory for the output files")
	flag.StringVar(&opts.format, "format", "", "Output format: csv or xlsx")
	flag.BoolVar(&opts.debug, "debug", false, "Debug logging, including SQL queries")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "Print the rows instead of writing files")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if opts.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	if err := run(context.Background(), opts, os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("Export failed")
	}
}

func run(ctx context.Context, opts options, stdin io.Reader) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if opts.outputDir != "" {
		cfg.Export.OutputDir = opts.outputDir
	}
	if opts.format != "" {
		cfg.Export.Format = strings.ToLower(opts.format)
	}
	if opts.debug {
		cfg.Database.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID, err := helper.GenerateUUID()
	if err != nil {
		return err
	}
	log.Logger = log.With().Str("run_id", runID).Logger()
	log.Debug().Interface("export", cfg.Export).Str("driver", cfg.Database.Driver).Msg("Loaded config")

	writer, err := export.NewWriter(cfg.Export.Format)
	if err != nil {
		return err
	}
	if !opts.dryRun {
		if err := helper.CreateFolder(cfg.Export.OutputDir); err != nil {
			return err
		}
	}

	store, err := db.Open(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer store.Close()

	input := opts.ids
	if input == "" {
		input, err = readLine(stdin)
		if err != nil {
			return err
		}
	}

	exporter := export.NewExporter(store, writer, cfg.Export.OutputDir)
	exporter.DryRun = opts.dryRun
	_, err = exporter.Run(ctx, input)
	return err
}

func readLine(r io.Reader) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
