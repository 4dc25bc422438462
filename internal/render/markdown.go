package render

import (
	"fmt"
	"strings"

	"github.com/zmanim/mcp/internal/types"
)

// Markdown renders the document as a human-readable markdown string: title,
// metadata block, one bullet row per instant grouped by section, and the
// layout's notes. The metadata lines carry trailing double spaces so
// markdown keeps them as separate lines.
func Markdown(doc Document, req types.Request, times types.ComputedTimes) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "**Location:** %s  \n", req.Location)
	fmt.Fprintf(&b, "**Date:** %s  \n", req.Date.Format(longDateLayout))
	fmt.Fprintf(&b, "**Timezone:** %s\n", req.TimeZone)

	for _, section := range doc.Sections {
		b.WriteString("\n")
		if section.Heading != "" {
			fmt.Fprintf(&b, "## %s:\n\n", section.Heading)
		}
		for _, row := range section.Rows {
			fmt.Fprintf(&b, "- **%s:** %s", row.Label, clock(times, row.Instant))
			if row.Detail != "" {
				fmt.Fprintf(&b, " %s", row.Detail)
			}
			b.WriteString("\n")
		}
	}

	for _, note := range doc.Notes {
		fmt.Fprintf(&b, "\n*Note: %s*\n", note)
	}

	return b.String()
}
