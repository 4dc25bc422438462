package render

import (
	"encoding/json"
	"fmt"

	"github.com/zmanim/mcp/internal/types"
)

// JSON renders the document as an indented JSON object. Every response
// carries location, the resolved ISO date and the timezone. With Grouped
// unset each row contributes a "<key>" field holding the human-readable
// timestamp and a "<key>_iso" field holding the RFC 3339 timestamp (null
// when absent); with Grouped set the same pairs nest under "times" and
// "times_iso" sub-objects. Extras are echoed verbatim.
func JSON(doc Document, req types.Request, times types.ComputedTimes) (string, error) {
	out := map[string]any{
		"location": req.Location,
		"date":     req.Date.Format(isoDateLayout),
		"timezone": req.TimeZone,
	}
	for _, extra := range doc.Extras {
		out[extra.Key] = extra.Value
	}

	if doc.Grouped {
		formatted := map[string]any{}
		isoTimes := map[string]any{}
		for _, row := range rows(doc) {
			formatted[row.jsonKey()] = clockDate(times, row.Instant)
			isoTimes[row.jsonKey()] = iso(times, row.Instant)
		}
		out["times"] = formatted
		out["times_iso"] = isoTimes
	} else {
		for _, row := range rows(doc) {
			out[row.jsonKey()] = clockDate(times, row.Instant)
			out[row.jsonKey()+"_iso"] = iso(times, row.Instant)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding response: %w", err)
	}
	return string(data), nil
}

// rows flattens the document sections, deduplicating instants rendered more
// than once in the markdown (the Shabbat layout shows nightfall twice).
func rows(doc Document) []Row {
	var out []Row
	seen := map[string]bool{}
	for _, section := range doc.Sections {
		for _, row := range section.Rows {
			if seen[row.jsonKey()] {
				continue
			}
			seen[row.jsonKey()] = true
			out = append(out, row)
		}
	}
	return out
}
