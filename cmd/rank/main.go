package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/povarna/generative-ai-agents/resume-ranker/internal/extract"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/ranking"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/setup/logger"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	jdPath := flag.String("jd", "", "Job description file (.txt, .md, .pdf, .docx)")
	dir := flag.StringP("dir", "d", "", "Directory of resume files")
	format := flag.StringP("format", "f", "table", "Output format: 'table', 'json'")
	level := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	log.Logger = logger.NewConsole(*level)
	appLogger := log.Logger

	if *jdPath == "" || *dir == "" {
		fmt.Fprintln(os.Stderr, "Usage: rank --jd <file> --dir <resumes-dir> [--format table|json]")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *format != "table" && *format != "json" {
		log.Fatal().Str("format", *format).Msg("Invalid format. Supported: table, json")
	}

	startTime := time.Now()

	jobDescription, err := extract.FromFile(*jdPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", *jdPath).Msg("Failed to read job description")
	}

	documents, err := extract.Dir(*dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read resumes")
	}
	for _, doc := range documents {
		if doc.Err != nil {
			log.Warn().Err(doc.Err).Str("file", doc.Name).Msg("Resume unreadable, skipping")
		}
	}

	ranker := ranking.NewRanker(&appLogger)
	result, err := ranker.RankEntries(jobDescription, extract.Texts(documents))
	if err != nil {
		log.Fatal().Err(err).Msg(models.ClientMessage(err))
	}

	log.Info().
		Int("files", len(documents)).
		Int("candidates", len(result.RankedCandidates)).
		Dur("duration", time.Since(startTime)).
		Msg("Ranking complete")

	if err := render(os.Stdout, *format, documents, result); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}
}

// rankedFile pairs a candidate with the file it came from.
type rankedFile struct {
	models.Candidate
	File string `json:"file"`
}

func render(w io.Writer, format string, documents []extract.Document, result models.AnalysisResult) error {
	rows := make([]rankedFile, 0, len(result.RankedCandidates))
	for _, candidate := range result.RankedCandidates {
		rows = append(rows, rankedFile{Candidate: candidate, File: documents[candidate.ID-1].Name})
	}

	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSCORE\tFILE\tSNIPPET")
	for i, row := range rows {
		fmt.Fprintf(tw, "%d\t%.2f\t%s\t%s\n", i+1, row.Score, row.File, strings.Join(strings.Fields(row.Snippet), " "))
	}
	return tw.Flush()
}
