package main

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	decisionSnippetLimit    = 200
	narrativeAssistantLimit = 500
)

// decisionKeywords mark assistant statements that likely record a choice.
// Matching is case-insensitive substring search.
var decisionKeywords = []string{"chose", "decided", "selected", "using", "rejected"}

// StatusLine produces the one-line quick-scan state summary. The three counts
// always equal the corresponding bucket lengths.
func StatusLine(agg *Aggregate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**State:** Session with %d actions taken", len(agg.ToolUses))
	if n := len(agg.Errors); n > 0 {
		fmt.Fprintf(&b, " | **Errors:** %d encountered", n)
	} else {
		b.WriteString(" | **Errors:** None")
	}
	fmt.Fprintf(&b, " | **Messages:** %d exchanges", len(agg.UserMessages))
	return b.String()
}

// truncate shortens s to at most limit bytes plus a marker, backing off to a
// rune boundary so the cut never splits a UTF-8 sequence.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// DecisionList scans assistant messages for decision keywords and returns the
// bulleted lines of the Key Decisions section, in original message order. A
// message matching several keywords appears once. When nothing matches, a
// single placeholder line is returned.
func DecisionList(agg *Aggregate) []string {
	var decisions []string
	for _, msg := range agg.AssistantMessages {
		lower := strings.ToLower(msg)
		for _, kw := range decisionKeywords {
			if strings.Contains(lower, kw) {
				decisions = append(decisions, "- "+truncate(msg, decisionSnippetLimit))
				break
			}
		}
	}

	if len(decisions) == 0 {
		decisions = append(decisions, "- No explicit decisions recorded in this session")
	}
	return decisions
}

// Narrative interleaves the user and assistant buckets into a transcript:
// next user turn, next assistant turn, blank separator, repeated until both
// buckets are exhausted. The merge is by bucket position, not by timestamp,
// so an exhausted bucket simply stops contributing while the other runs out.
// Assistant turns are truncated; user turns never are.
func Narrative(agg *Aggregate) string {
	var lines []string
	userIdx, assistantIdx := 0, 0

	for userIdx < len(agg.UserMessages) || assistantIdx < len(agg.AssistantMessages) {
		if userIdx < len(agg.UserMessages) {
			lines = append(lines, "**User:** "+agg.UserMessages[userIdx])
			userIdx++
		}
		if assistantIdx < len(agg.AssistantMessages) {
			lines = append(lines, "**Assistant:** "+truncate(agg.AssistantMessages[assistantIdx], narrativeAssistantLimit))
			assistantIdx++
		}
		lines = append(lines, "") // separator between exchanges
	}

	return strings.Join(lines, "\n")
}
