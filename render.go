package main

import (
	"fmt"
	"strings"
	"text/template"
)

// summaryTemplate is the fixed shape of the generated document: a quick-scan
// status line followed by two collapsible sections and a footer. Values are
// substituted as-is with no further transformation.
const summaryTemplate = `# Session Summary: {{.Timestamp}}

<!-- Quick scan -->
{{.Status}}

<details>
<summary>Key Decisions (click to expand)</summary>

{{.Decisions}}

</details>

<details>
<summary>Full Narrative (click for details)</summary>

{{.Narrative}}

</details>

---

*Generated automatically by ccsummary from Claude Code session logs*
`

var summaryTmpl = template.Must(template.New("summary").Parse(summaryTemplate))

// SummarySections carries the generated section bodies into the document
// template.
type SummarySections struct {
	Timestamp string
	Status    string
	Decisions string
	Narrative string
}

// RenderSummary assembles the final markdown document from the generated
// sections. Pure and deterministic; assembly is lossless for its inputs.
func RenderSummary(sections SummarySections) (string, error) {
	var b strings.Builder
	if err := summaryTmpl.Execute(&b, sections); err != nil {
		return "", fmt.Errorf("failed to execute summary template: %w", err)
	}
	return b.String(), nil
}
