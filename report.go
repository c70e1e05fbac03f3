package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// maxWidthOverride is set by the undocumented -maxwidth flag for testing
var maxWidthOverride int

// ReportData holds the counts and paths exposed to console report templates.
// Counts always equal the aggregate bucket lengths.
type ReportData struct {
	Events            int
	UserMessages      int
	AssistantMessages int
	ToolUses          int
	ToolResults       int
	Errors            int
	SummaryFile       string
	LatestAlias       string
}

// Named templates for common report formats
var namedTemplates = map[string]string{
	"counts": "{{.UserMessages}} user / {{.AssistantMessages}} assistant / {{.ToolUses}} tools / {{.Errors}} errors",
	"files":  "{{.SummaryFile}}\n{{.LatestAlias}}",
}

// getTerminalWidth returns the terminal width, or 0 if not a terminal
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0 // Not a terminal or error
	}
	return width
}

// sampleText flattens a bucket entry to a single display line of at most
// limit bytes.
func sampleText(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "-"
	}
	return truncate(s, limit)
}

// lastSample returns the newest entry of a string bucket, or "-" when empty.
func lastSample(bucket []string, limit int) string {
	if len(bucket) == 0 {
		return "-"
	}
	return sampleText(bucket[len(bucket)-1], limit)
}

// renderStats prints the per-bucket stats table. When the terminal is too
// narrow for the most-recent-entry column, it falls back to counts only.
func renderStats(w io.Writer, agg *Aggregate) {
	termWidth := getTerminalWidth()
	if maxWidthOverride > 0 {
		termWidth = maxWidthOverride
	}

	// Bucket and count columns plus borders and padding take ~32 cells;
	// whatever is left goes to the sample column.
	sampleWidth := 80
	wide := true
	if termWidth > 0 {
		sampleWidth = termWidth - 32
		switch {
		case sampleWidth < 20:
			wide = false
		case sampleWidth > 80:
			sampleWidth = 80
		}
	}

	var toolSample, resultSample, errorSample string
	if n := len(agg.ToolUses); n > 0 {
		toolSample = sampleText(agg.ToolUses[n-1].Name, sampleWidth)
	} else {
		toolSample = "-"
	}
	if n := len(agg.ToolResults); n > 0 {
		resultSample = sampleText(agg.ToolResults[n-1].ToolUseID, sampleWidth)
	} else {
		resultSample = "-"
	}
	if n := len(agg.Errors); n > 0 {
		errorSample = sampleText(agg.Errors[n-1].ToolUseID, sampleWidth)
	} else {
		errorSample = "-"
	}

	rows := [][]string{
		{"User messages", fmt.Sprintf("%d", len(agg.UserMessages)), lastSample(agg.UserMessages, sampleWidth)},
		{"Assistant messages", fmt.Sprintf("%d", len(agg.AssistantMessages)), lastSample(agg.AssistantMessages, sampleWidth)},
		{"Tool uses", fmt.Sprintf("%d", len(agg.ToolUses)), toolSample},
		{"Tool results", fmt.Sprintf("%d", len(agg.ToolResults)), resultSample},
		{"Errors", fmt.Sprintf("%d", len(agg.Errors)), errorSample},
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
		})))

	headers := []string{"Bucket", "Count", "Most Recent"}
	alignments := []tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignLeft}
	if !wide {
		headers = headers[:2]
		alignments = alignments[:2]
	}
	table.Header(headers)
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.PerColumn = alignments
	})

	for _, row := range rows {
		if !wide {
			row = row[:2]
		}
		table.Append(row)
	}

	table.Render()
}

// renderReport outputs the post-run console report using the provided format:
// the stats table, a named template, or a custom Go template over ReportData.
func renderReport(w io.Writer, format string, agg *Aggregate, data ReportData) error {
	switch format {
	case "none":
		return nil
	case "table":
		renderStats(w, agg)
		return nil
	}

	if named, ok := namedTemplates[format]; ok {
		format = named
	} else if !strings.Contains(format, "{{") {
		return fmt.Errorf("unknown output format: %s (valid: table, none, counts, files, or custom Go template)", format)
	}

	tmpl, err := template.New("report").Parse(format)
	if err != nil {
		return fmt.Errorf("failed to parse report format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute report template: %w", err)
	}
	fmt.Fprintln(w) // Add newline after output

	return nil
}
