package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/noomesk/genome-cleaner/pkg/genomecleaner"
)

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "genome-cleaner",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func processCmd(args []string) {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	input := fs.String("input", "", "Input FASTA/FASTQ file")
	sanitize := fs.Bool("sanitize", false, "Replace illegal characters with N")
	minLength := fs.Int("min-length", 20, "Minimum sequence length")
	verbose := fs.Bool("verbose", false, "Enable verbose output")
	fs.Parse(args)

	logger := newLogger(*verbose)
	rep := mustProcess(logger, *input, *sanitize, *minLength)

	s := rep.Summary
	fmt.Printf("Total sequences:     %d\n", s.TotalCount)
	fmt.Printf("Valid sequences:     %d (%.1f%%)\n", s.ValidCount, s.ValidRatio()*100)
	fmt.Printf("Invalid sequences:   %d\n", s.InvalidCount)
	fmt.Printf("Sanitized sequences: %d\n", s.SanitizedCount)
	fmt.Printf("Length range:        %d - %d (avg %.1f, median %d, N50 %d)\n",
		s.MinLength, s.MaxLength, s.AvgLength, s.MedianLength, s.N50)
	fmt.Printf("Avg GC content:      %.2f%%\n", s.AvgGCContent*100)

	if len(s.ErrorHistogram) > 0 {
		fmt.Println("Errors:")
		for _, code := range genomecleaner.ErrorCodes {
			if n, ok := s.ErrorHistogram[code]; ok {
				fmt.Printf("  %-20s %d\n", code.String(), n)
			}
		}
	}
}

func cleanCmd(args []string) {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)
	input := fs.String("input", "", "Input FASTA/FASTQ file")
	output := fs.String("output", "", "Output file for cleaned FASTA (default: stdout)")
	minLength := fs.Int("min-length", 20, "Minimum sequence length")
	verbose := fs.Bool("verbose", false, "Enable verbose output")
	fs.Parse(args)

	logger := newLogger(*verbose)
	rep := mustProcess(logger, *input, true, *minLength)

	if *output == "" {
		if err := genomecleaner.WriteCleaned(os.Stdout, rep.Records); err != nil {
			logger.Fatal("writing cleaned output", "err", err)
		}
		return
	}

	if err := genomecleaner.WriteCleanedFile(*output, rep.Records); err != nil {
		logger.Fatal("writing cleaned output", "err", err)
	}
	logger.Info("cleaned sequences written",
		"file", *output, "sanitized", rep.Summary.SanitizedCount)
}

func reportCmd(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	input := fs.String("input", "", "Input FASTA/FASTQ file")
	output := fs.String("output", "", "Report output path (default: stdout)")
	format := fs.String("format", "json", "Report format: json or csv")
	sanitize := fs.Bool("sanitize", false, "Replace illegal characters with N")
	minLength := fs.Int("min-length", 20, "Minimum sequence length")
	verbose := fs.Bool("verbose", false, "Enable verbose output")
	fs.Parse(args)

	logger := newLogger(*verbose)

	if *format != "json" && *format != "csv" {
		logger.Fatal("unsupported report format", "format", *format)
	}

	rep := mustProcess(logger, *input, *sanitize, *minLength)

	out := os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			logger.Fatal("creating report file", "err", err)
		}
		defer file.Close()
		out = file
	}

	var err error
	if *format == "json" {
		err = rep.WriteJSON(out)
	} else {
		err = rep.WriteCSV(out)
	}
	if err != nil {
		logger.Fatal("writing report", "err", err)
	}

	if *output != "" {
		logger.Info("report written", "file", *output, "format", *format)
	}
}

func mustProcess(logger *log.Logger, input string, sanitize bool, minLength int) *genomecleaner.Report {
	if input == "" {
		logger.Fatal("missing required -input flag")
	}

	data, err := os.ReadFile(input)
	if err != nil {
		logger.Fatal("reading input", "err", err)
	}

	format := genomecleaner.DetectFormat(string(data))
	logger.Debug("detected format", "format", format.String())

	cfg := genomecleaner.DefaultConfig()
	cfg.Sanitize = sanitize
	cfg.MinLength = minLength

	rep, err := genomecleaner.Process(string(data), cfg)
	if err != nil {
		logger.Fatal("processing failed", "err", err)
	}

	logger.Debug("processed records",
		"total", rep.Summary.TotalCount,
		"valid", rep.Summary.ValidCount,
		"invalid", rep.Summary.InvalidCount)

	return rep
}
