// Package types defines the request and result shapes shared by the MCP tool
// handlers, the input validator, the calculation boundary, and the renderers.
package types

import "time"

// ResponseFormat selects the rendering of a tool response.
type ResponseFormat string

const (
	// FormatMarkdown renders a human-readable markdown document.
	FormatMarkdown ResponseFormat = "markdown"
	// FormatJSON renders a machine-readable JSON document.
	FormatJSON ResponseFormat = "json"
)

// LocationRequest is the raw request shape shared by all zmanim tools,
// exactly as received from the MCP client and before validation.
type LocationRequest struct {
	// Location is the display name of the place (e.g. "New York, NY").
	Location string `json:"location"`
	// Latitude in decimal degrees, -90 to 90.
	Latitude float64 `json:"latitude"`
	// Longitude in decimal degrees, -180 to 180.
	Longitude float64 `json:"longitude"`
	// TimeZone is an IANA timezone identifier (e.g. "America/New_York").
	// Validity against the timezone database is checked when the
	// calculation context is built, not here.
	TimeZone string `json:"time_zone"`
	// Date is an optional calendar date in YYYY-MM-DD form. Empty means
	// "today" at evaluation time.
	Date string `json:"date,omitempty"`
	// ResponseFormat is "markdown" or "json"; empty defaults to markdown.
	ResponseFormat string `json:"response_format,omitempty"`
	// CandleLightingOffset is minutes before sunset for candle lighting.
	// Only the Shabbat tool accepts it from the client; every request
	// carries a value so a single normalization path applies.
	CandleLightingOffset int `json:"candle_lighting_offset,omitempty"`
}

// Request is a validated, normalized request: the date is explicit, the
// format is concrete, and all field constraints have been checked.
type Request struct {
	Location             string
	Latitude             float64
	Longitude            float64
	TimeZone             string
	Date                 time.Time
	Format               ResponseFormat
	CandleLightingOffset int
}

// Instant names a halachic time boundary computed for a single request.
// The string value doubles as the stable JSON key for the instant.
type Instant string

const (
	AlosHashachar72   Instant = "alos_hashachar_72"
	Sunrise           Instant = "sunrise"
	SofZmanShemaGRA   Instant = "sof_zman_shema_gra"
	SofZmanShemaMGA   Instant = "sof_zman_shema_mga"
	SofZmanTefilaGRA  Instant = "sof_zman_tefila_gra"
	SofZmanTefilaMGA  Instant = "sof_zman_tefila_mga"
	Chatzos           Instant = "chatzos"
	MinchaGedola      Instant = "mincha_gedola"
	MinchaKetana      Instant = "mincha_ketana"
	PlagHamincha      Instant = "plag_hamincha"
	Sunset            Instant = "sunset"
	CandleLighting    Instant = "candle_lighting"
	TzeisHakochavim72 Instant = "tzeis_hakochavim_72"
)

// ComputedTimes maps each queried instant to its timestamp in the request's
// timezone. An instant the calculation library could not produce for the
// given location/date (e.g. polar conditions) is simply absent. Instances
// live for a single tool invocation and are never shared or persisted.
type ComputedTimes map[Instant]time.Time

// Lookup returns the timestamp for an instant and whether it was computed.
func (ct ComputedTimes) Lookup(instant Instant) (time.Time, bool) {
	t, ok := ct[instant]
	return t, ok
}
