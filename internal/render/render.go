// Package render turns a set of computed instants into a tool response
// string. Each tool declares a Document layout (title, sections, notes) and
// the markdown and JSON renderers are pure functions of the validated
// request, the layout and the computed times. An instant the calculation
// library produced no value for renders as "N/A" in human-readable fields
// and null in ISO fields; absence is never escalated to an error.
package render

import (
	"time"

	"github.com/zmanim/mcp/internal/types"
)

// NotAvailable is the literal rendered for an instant with no value.
const NotAvailable = "N/A"

// Time layouts used across both renderers.
const (
	clockLayout     = "03:04 PM"
	clockDateLayout = "2006-01-02 03:04 PM"
	longDateLayout  = "January 02, 2006"
	isoDateLayout   = "2006-01-02"
)

// Document is the fixed layout of one tool's response.
type Document struct {
	// Title is the markdown H1 heading.
	Title string
	// Sections group the rendered instants.
	Sections []Section
	// Notes are verbatim one-line explanations appended to the markdown.
	Notes []string
	// Grouped selects the daily-digest JSON shape, nesting instants under
	// "times" and "times_iso" sub-objects instead of flat fields.
	Grouped bool
	// Extras are request parameters echoed back in the JSON output, such
	// as the candle-lighting offset.
	Extras []Field
}

// Field is an extra key/value echoed into the JSON output.
type Field struct {
	Key   string
	Value any
}

// Section is a labeled group of instants. An empty heading renders its rows
// directly under the metadata block.
type Section struct {
	Heading string
	Rows    []Row
}

// Row renders a single instant.
type Row struct {
	// Instant selects the computed time to render.
	Instant types.Instant
	// Label is the markdown row label.
	Label string
	// Detail is an optional trailing annotation, e.g.
	// "(72 minutes after sunset)".
	Detail string
	// Key overrides the JSON key for this row; empty uses the instant name.
	Key string
}

func (r Row) jsonKey() string {
	if r.Key != "" {
		return r.Key
	}
	return string(r.Instant)
}

// clock formats an instant as "HH:MM AM/PM", or N/A when absent.
func clock(times types.ComputedTimes, instant types.Instant) string {
	if t, ok := times.Lookup(instant); ok {
		return t.Format(clockLayout)
	}
	return NotAvailable
}

// clockDate formats an instant as "YYYY-MM-DD HH:MM AM/PM", or N/A when
// absent.
func clockDate(times types.ComputedTimes, instant types.Instant) string {
	if t, ok := times.Lookup(instant); ok {
		return t.Format(clockDateLayout)
	}
	return NotAvailable
}

// iso formats an instant as RFC 3339, or nil when absent. The nil maps to a
// JSON null.
func iso(times types.ComputedTimes, instant types.Instant) any {
	if t, ok := times.Lookup(instant); ok {
		return t.Format(time.RFC3339)
	}
	return nil
}
