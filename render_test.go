package main

import (
	"strings"
	"testing"
)

// sectionBetween extracts the document text strictly between two markers.
func sectionBetween(t *testing.T, doc, after, before string) string {
	t.Helper()
	start := strings.Index(doc, after)
	if start < 0 {
		t.Fatalf("marker %q not found", after)
	}
	start += len(after)
	end := strings.Index(doc[start:], before)
	if end < 0 {
		t.Fatalf("marker %q not found after %q", before, after)
	}
	return doc[start : start+end]
}

func TestRenderSummaryRoundTrip(t *testing.T) {
	sections := SummarySections{
		Timestamp: "2026-08-24-1030",
		Status:    "**State:** Session with 4 actions taken | **Errors:** None | **Messages:** 2 exchanges",
		Decisions: "- chose the simple path\n- rejected the cache",
		Narrative: "**User:** hi\n**Assistant:** hello\n",
	}

	doc, err := RenderSummary(sections)
	if err != nil {
		t.Fatalf("RenderSummary: %v", err)
	}

	if !strings.HasPrefix(doc, "# Session Summary: 2026-08-24-1030\n") {
		t.Errorf("missing title line:\n%s", doc)
	}
	if got := sectionBetween(t, doc, "<!-- Quick scan -->\n", "\n\n<details>"); got != sections.Status {
		t.Errorf("status section = %q, want %q", got, sections.Status)
	}
	if got := sectionBetween(t, doc, "<summary>Key Decisions (click to expand)</summary>\n\n", "\n\n</details>"); got != sections.Decisions {
		t.Errorf("decisions section = %q, want %q", got, sections.Decisions)
	}
	if got := sectionBetween(t, doc, "<summary>Full Narrative (click for details)</summary>\n\n", "\n\n</details>"); got != sections.Narrative {
		t.Errorf("narrative section = %q, want %q", got, sections.Narrative)
	}
	if !strings.HasSuffix(doc, "*Generated automatically by ccsummary from Claude Code session logs*\n") {
		t.Errorf("missing footer:\n%s", doc)
	}
	if count := strings.Count(doc, "<details>"); count != 2 {
		t.Errorf("got %d collapsible sections, want 2", count)
	}
}

func TestRenderSummaryEmptySession(t *testing.T) {
	agg := ExtractSummary(nil)
	doc, err := RenderSummary(SummarySections{
		Timestamp: "2026-08-24-1030",
		Status:    StatusLine(agg),
		Decisions: strings.Join(DecisionList(agg), "\n"),
		Narrative: Narrative(agg),
	})
	if err != nil {
		t.Fatalf("RenderSummary: %v", err)
	}

	if !strings.Contains(doc, "**State:** Session with 0 actions taken | **Errors:** None | **Messages:** 0 exchanges") {
		t.Errorf("empty session status missing:\n%s", doc)
	}
	if !strings.Contains(doc, "- No explicit decisions recorded in this session") {
		t.Errorf("decision placeholder missing:\n%s", doc)
	}
}

func TestRenderSummaryDoesNotEscapeMarkdown(t *testing.T) {
	doc, err := RenderSummary(SummarySections{
		Timestamp: "ts",
		Status:    `status with <angle> & "quotes"`,
		Decisions: "- d",
		Narrative: "**User:** n\n",
	})
	if err != nil {
		t.Fatalf("RenderSummary: %v", err)
	}
	if !strings.Contains(doc, `status with <angle> & "quotes"`) {
		t.Error("section content must be substituted with no transformation")
	}
}
