package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/aggregator"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/batch"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/setup"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	startTime := time.Now()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	input := flag.StringP("input", "i", "", "Input JSONL file, '-' for stdin")
	output := flag.StringP("output", "o", "", "Output file (stdout when empty)")
	format := flag.StringP("format", "f", batch.FormatJSONL, "Output format: 'jsonl', 'summary'")
	summary := flag.String("summary", "", "Optional separate summary file")
	workers := flag.IntP("workers", "w", 0, "Concurrent ranking workers (config value when 0)")
	continueOnError := flag.Bool("continue-on-error", true, "Continue on write failures")
	dryRun := flag.Bool("dry-run", false, "Validate input without ranking")

	flag.Parse()

	if *input == "" {
		log.Fatal().Msg("required flag --input not provided")
	}
	formatValidator(*format)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	ctx, cancel := setupGracefulShutdown()
	defer cancel()

	cfg, err := setup.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Logger = logger.NewConsole(cfg.Log.Level)
	appLogger := log.Logger

	deps, err := setup.Wire(cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	if *workers == 0 {
		*workers = cfg.Batch.Workers
	}

	// Open input file
	var inputFile io.Reader
	if *input == "-" {
		inputFile = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("file", *input).Msg("Failed to open input file")
		}
		defer f.Close()
		inputFile = f
		log.Info().Str("file", *input).Msg("Reading input file")
	}

	// Read records
	reader := batch.NewReader(inputFile, deps.Logger)
	var records []batch.InputRecord
	for record := range reader.ReadAll(ctx) {
		records = append(records, record)
	}

	log.Info().Int("total", len(records)).Msg("Input file parsed")

	// Dry run validation
	if *dryRun {
		dryRunAndExit(records)
	}

	// Open output file
	var outputFile io.Writer
	if *output == "" {
		outputFile = os.Stdout
		log.Info().Msg("Writing to stdout")
	} else {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("file", *output).Msg("Failed to create output file")
		}
		defer f.Close()
		outputFile = f
		log.Info().Str("file", *output).Msg("Writing to output file")
	}

	// Create writer
	writer, err := batch.NewWriter(outputFile, *format, deps.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create writer")
	}

	// Process with worker pool
	processor := batch.NewProcessor(deps.Ranker, *workers, deps.Logger)
	outcomes := processor.Process(ctx, records)

	agg := aggregator.NewAggregator(deps.Logger)
	writeCount := 0
	errorCount := 0

	for outcome := range outcomes {
		agg.Add(outcome)

		if err := writer.Write(outcome); err != nil {
			log.Error().Err(err).Str("request_id", outcome.RequestID).Msg("Failed to write outcome")
			errorCount++

			if !*continueOnError {
				cancel()
				log.Error().Msg("Stopping due to write error")
				break
			}
			continue
		}
		writeCount++
	}

	if err := writer.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to flush output")
	}

	runSummary := agg.Summary()

	log.Info().
		Int("written", writeCount).
		Int("write_errors", errorCount).
		Int("succeeded", runSummary.Succeeded).
		Int("failed", runSummary.Failed).
		Dur("duration", time.Since(startTime)).
		Msg("Processing complete")

	if *summary != "" {
		writeSummary(*summary, runSummary)
	}

	log.Info().Msg("Batch processing complete")
}

func setupGracefulShutdown() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Warn().Msg("Received interrupt signal, finishing current work...")
		cancel()
	}()

	return ctx, cancel
}

func formatValidator(format string) {
	validFormats := map[string]bool{batch.FormatJSONL: true, batch.FormatSummary: true}
	if !validFormats[format] {
		log.Fatal().
			Str("format", format).
			Msg("Invalid format. Supported: jsonl, summary")
	}
}

func writeSummary(path string, summary aggregator.Summary) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode summary")
		return
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		log.Error().Err(err).Str("file", path).Msg("Failed to write summary file")
		return
	}
	log.Info().Str("file", path).Msg("Summary written")
}

func dryRunAndExit(records []batch.InputRecord) {
	errorCount := 0
	for _, record := range records {
		if record.Error != nil {
			log.Error().
				Int("line", record.LineNumber).
				Err(record.Error).
				Msg("Validation error")
			errorCount++
			continue
		}
		if err := record.Envelope.Validate(); err != nil {
			log.Error().
				Int("line", record.LineNumber).
				Str("request_id", record.Envelope.RequestID).
				Err(err).
				Msg("Validation error")
			errorCount++
		}
	}

	if errorCount > 0 {
		log.Fatal().Int("errors", errorCount).Msg("Validation failed")
	}

	log.Info().Msg("Validation successful")
	os.Exit(0)
}
