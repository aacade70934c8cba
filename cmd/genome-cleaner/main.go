// Command genome-cleaner validates and cleans FASTA/FASTQ files.
//
// Usage:
//
//	genome-cleaner <command> [options]
//
// Commands:
//
//	process     Validate a file and print a summary
//	clean       Sanitize sequences and write cleaned FASTA
//	report      Generate a JSON or CSV report
//	version     Show version information
package main

import (
	"fmt"
	"os"

	"github.com/noomesk/genome-cleaner/pkg/genomecleaner"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "process":
		processCmd(os.Args[2:])
	case "clean":
		cleanCmd(os.Args[2:])
	case "report":
		reportCmd(os.Args[2:])
	case "version":
		fmt.Println(genomecleaner.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Genome Cleaner - FASTA/FASTQ validation and cleaning

Usage:
  genome-cleaner <command> [options]

Commands:
  process   Validate a file and print a summary
  clean     Sanitize sequences and write cleaned FASTA
  report    Generate a JSON or CSV report
  version   Show version information
  help      Show this help message

Use "genome-cleaner <command> -h" for more information about a command.`)
}
