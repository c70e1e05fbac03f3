package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// summaryTimestampFormat names summary files sortably by date and time.
const summaryTimestampFormat = "2006-01-02-1504"

func main() {
	project := flag.String("project", "", "Project directory to summarize (default: current directory)")
	logRoot := flag.String("log-root", "", "Session log root (default: ~/.claude/projects)")
	outDir := flag.String("out", "", "Directory to write summaries into (default: <project>/.context)")
	output := flag.String("output", "table", "Console report format: table, none, counts, files, or custom Go template")
	flag.StringVar(output, "o", "table", "Console report format (shorthand)")
	flag.IntVar(&maxWidthOverride, "maxwidth", 0, "")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Summarizes the most recent Claude Code session for a project into a\n")
		fmt.Fprintf(os.Stderr, "markdown document under <project>/.context/.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  -project string   Project directory (default: current directory)\n")
		fmt.Fprintf(os.Stderr, "  -log-root string  Session log root (default: ~/.claude/projects)\n")
		fmt.Fprintf(os.Stderr, "  -out string       Output directory (default: <project>/.context)\n")
		fmt.Fprintf(os.Stderr, "  -o, -output string\n")
		fmt.Fprintf(os.Stderr, "        Console report format (default \"table\")\n")
		fmt.Fprintf(os.Stderr, "\nReport Formats:\n")
		fmt.Fprintf(os.Stderr, "  table            Per-bucket stats table (default)\n")
		fmt.Fprintf(os.Stderr, "  none             No console report\n")
		fmt.Fprintf(os.Stderr, "  counts           One-line bucket counts\n")
		fmt.Fprintf(os.Stderr, "  files            Paths of the written summary and alias\n")
		fmt.Fprintf(os.Stderr, "  {{...}}          Custom Go template\n")
		fmt.Fprintf(os.Stderr, "\nTemplate Variables:\n")
		fmt.Fprintf(os.Stderr, "  .Events                              Decoded log entries\n")
		fmt.Fprintf(os.Stderr, "  .UserMessages, .AssistantMessages    Message counts\n")
		fmt.Fprintf(os.Stderr, "  .ToolUses, .ToolResults, .Errors     Tool activity counts\n")
		fmt.Fprintf(os.Stderr, "  .SummaryFile, .LatestAlias           Written file paths\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # summarize current project\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -o counts                # one-line report\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -o '{{.ToolUses}} tools' # custom template\n", os.Args[0])
	}

	flag.Parse()

	// Resolve the project directory; the locator needs an absolute,
	// existing path.
	projectDir := *project
	if projectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Fatalf("Failed to get working directory: %v", err)
		}
		projectDir = wd
	}
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		log.Fatalf("Failed to resolve project directory: %v", err)
	}
	if info, err := os.Stat(projectDir); err != nil || !info.IsDir() {
		log.Fatalf("Project directory does not exist: %s", projectDir)
	}

	root := *logRoot
	if root == "" {
		root, err = DefaultLogRoot()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}
	}

	fmt.Println("Generating session summary...")
	fmt.Printf("Project: %s\n", projectDir)

	logFile, err := FindLatestSessionLog(root, projectDir)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoProjectDir):
			log.Fatalf("No Claude Code session directory found: %v", err)
		case errors.Is(err, ErrNoSessionLogs):
			log.Fatalf("No session logs found: %v", err)
		default:
			log.Fatalf("Failed to locate session log: %v", err)
		}
	}
	fmt.Printf("Session log: %s\n", logFile)

	entries, err := ParseSessionLog(logFile)
	if err != nil {
		log.Fatalf("Failed to parse session log: %v", err)
	}
	fmt.Printf("Parsed %d events\n", len(entries))

	agg := ExtractSummary(entries)
	fmt.Printf("Found %d user messages, %d assistant messages\n", len(agg.UserMessages), len(agg.AssistantMessages))
	fmt.Printf("Found %d tool uses\n", len(agg.ToolUses))

	timestamp := time.Now().Format(summaryTimestampFormat)
	markdown, err := RenderSummary(SummarySections{
		Timestamp: timestamp,
		Status:    StatusLine(agg),
		Decisions: strings.Join(DecisionList(agg), "\n"),
		Narrative: Narrative(agg),
	})
	if err != nil {
		log.Fatalf("Failed to render summary: %v", err)
	}

	dir := *outDir
	if dir == "" {
		dir = filepath.Join(projectDir, ".context")
	}
	summaryFile, err := SaveSummary(dir, markdown, timestamp)
	if err != nil {
		log.Fatalf("Failed to save summary: %v", err)
	}
	fmt.Printf("Summary saved: %s\n", summaryFile)
	fmt.Printf("Alias updated: %s -> %s\n", latestAlias, filepath.Base(summaryFile))

	data := ReportData{
		Events:            len(entries),
		UserMessages:      len(agg.UserMessages),
		AssistantMessages: len(agg.AssistantMessages),
		ToolUses:          len(agg.ToolUses),
		ToolResults:       len(agg.ToolResults),
		Errors:            len(agg.Errors),
		SummaryFile:       summaryFile,
		LatestAlias:       filepath.Join(dir, latestAlias),
	}
	if err := renderReport(os.Stdout, *output, agg, data); err != nil {
		log.Fatalf("Error rendering report: %v", err)
	}
}
