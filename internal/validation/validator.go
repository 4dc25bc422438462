// Package validation checks zmanim tool requests before any computation
// occurs. It enforces the field constraints of the request model and
// produces a normalized request with an explicit date and a concrete
// response-format selection. Validation has no side effects; a request that
// fails any check is rejected with a typed error naming the field.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/zmanim/mcp/internal/types"
)

// Field limits for request inputs.
const (
	// MaxLocationLength bounds the location display name.
	MaxLocationLength = 100
	// MinLatitude and MaxLatitude bound latitude in decimal degrees.
	MinLatitude = -90.0
	MaxLatitude = 90.0
	// MinLongitude and MaxLongitude bound longitude in decimal degrees.
	MinLongitude = -180.0
	MaxLongitude = 180.0
	// MinCandleOffset and MaxCandleOffset bound the candle-lighting offset
	// in minutes before sunset. The inclusive range is 1-60.
	MinCandleOffset = 1
	MaxCandleOffset = 60
	// DefaultCandleOffset is used when a request does not specify one.
	DefaultCandleOffset = 18
)

// DateLayout is the only accepted layout for the optional date parameter.
const DateLayout = "2006-01-02"

// Error reports a request field that failed validation.
type Error struct {
	// Field is the request parameter that failed.
	Field string
	// Message explains the violated constraint.
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Normalize validates raw against the request model constraints and returns
// the normalized request. The today argument supplies the evaluation date
// used when the request omits one; callers inject it so date resolution
// stays deterministic in tests.
func Normalize(raw types.LocationRequest, today time.Time) (types.Request, error) {
	req := types.Request{
		Location:             strings.TrimSpace(raw.Location),
		Latitude:             raw.Latitude,
		Longitude:            raw.Longitude,
		TimeZone:             strings.TrimSpace(raw.TimeZone),
		CandleLightingOffset: raw.CandleLightingOffset,
	}

	if req.Location == "" {
		return types.Request{}, errorf("location", "must not be empty")
	}
	if len(req.Location) > MaxLocationLength {
		return types.Request{}, errorf("location", "exceeds maximum length of %d", MaxLocationLength)
	}
	if raw.Latitude < MinLatitude || raw.Latitude > MaxLatitude {
		return types.Request{}, errorf("latitude", "%g is outside the range %g to %g", raw.Latitude, MinLatitude, MaxLatitude)
	}
	if raw.Longitude < MinLongitude || raw.Longitude > MaxLongitude {
		return types.Request{}, errorf("longitude", "%g is outside the range %g to %g", raw.Longitude, MinLongitude, MaxLongitude)
	}
	if req.TimeZone == "" {
		return types.Request{}, errorf("time_zone", "must not be empty")
	}

	if req.CandleLightingOffset < MinCandleOffset || req.CandleLightingOffset > MaxCandleOffset {
		return types.Request{}, errorf("candle_lighting_offset",
			"%d is outside the range %d to %d", req.CandleLightingOffset, MinCandleOffset, MaxCandleOffset)
	}

	format, err := parseFormat(raw.ResponseFormat)
	if err != nil {
		return types.Request{}, err
	}
	req.Format = format

	date, err := resolveDate(raw.Date, today)
	if err != nil {
		return types.Request{}, err
	}
	req.Date = date

	return req, nil
}

// parseFormat maps the raw response_format parameter to a ResponseFormat.
// An empty value selects markdown.
func parseFormat(raw string) (types.ResponseFormat, error) {
	switch types.ResponseFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", types.FormatMarkdown:
		return types.FormatMarkdown, nil
	case types.FormatJSON:
		return types.FormatJSON, nil
	default:
		return "", errorf("response_format", "%q is not one of %q or %q",
			raw, types.FormatMarkdown, types.FormatJSON)
	}
}

// resolveDate parses an explicit YYYY-MM-DD date or falls back to the
// supplied evaluation date. The result is truncated to midnight so downstream
// consumers only ever see date semantics.
func resolveDate(raw string, today time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, errorf("date", "%q is not a valid %s date", raw, DateLayout)
	}
	return date, nil
}
