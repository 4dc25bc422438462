package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/zmanim/mcp/internal/types"
)

func validRaw() types.LocationRequest {
	return types.LocationRequest{
		Location:             "New York, NY",
		Latitude:             40.7128,
		Longitude:            -74.0060,
		TimeZone:             "America/New_York",
		Date:                 "2024-06-21",
		ResponseFormat:       "markdown",
		CandleLightingOffset: 18,
	}
}

func fixedToday() time.Time {
	return time.Date(2024, time.June, 21, 15, 4, 5, 0, time.UTC)
}

func TestNormalizeValidRequest(t *testing.T) {
	req, err := Normalize(validRaw(), fixedToday())
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if req.Location != "New York, NY" {
		t.Errorf("unexpected location %q", req.Location)
	}
	if req.Format != types.FormatMarkdown {
		t.Errorf("unexpected format %q", req.Format)
	}
	if got := req.Date.Format(DateLayout); got != "2024-06-21" {
		t.Errorf("unexpected date %s", got)
	}
	if req.CandleLightingOffset != 18 {
		t.Errorf("unexpected offset %d", req.CandleLightingOffset)
	}
}

func TestNormalizeTrimsWhitespace(t *testing.T) {
	raw := validRaw()
	raw.Location = "  Jerusalem  "
	raw.TimeZone = " Asia/Jerusalem "

	req, err := Normalize(raw, fixedToday())
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if req.Location != "Jerusalem" {
		t.Errorf("location not trimmed: %q", req.Location)
	}
	if req.TimeZone != "Asia/Jerusalem" {
		t.Errorf("time zone not trimmed: %q", req.TimeZone)
	}
}

func TestNormalizeDefaultsDateToToday(t *testing.T) {
	raw := validRaw()
	raw.Date = ""

	req, err := Normalize(raw, fixedToday())
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got := req.Date.Format(DateLayout); got != "2024-06-21" {
		t.Errorf("expected today's date, got %s", got)
	}
	if req.Date.Hour() != 0 || req.Date.Minute() != 0 {
		t.Errorf("resolved date not truncated to midnight: %v", req.Date)
	}
}

func TestNormalizeDefaultsFormatToMarkdown(t *testing.T) {
	raw := validRaw()
	raw.ResponseFormat = ""

	req, err := Normalize(raw, fixedToday())
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if req.Format != types.FormatMarkdown {
		t.Errorf("expected markdown default, got %q", req.Format)
	}
}

func TestNormalizeAcceptsBoundaryValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.LocationRequest)
	}{
		{"latitude min", func(r *types.LocationRequest) { r.Latitude = -90 }},
		{"latitude max", func(r *types.LocationRequest) { r.Latitude = 90 }},
		{"longitude min", func(r *types.LocationRequest) { r.Longitude = -180 }},
		{"longitude max", func(r *types.LocationRequest) { r.Longitude = 180 }},
		{"offset min", func(r *types.LocationRequest) { r.CandleLightingOffset = 1 }},
		{"offset max", func(r *types.LocationRequest) { r.CandleLightingOffset = 60 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)
			if _, err := Normalize(raw, fixedToday()); err != nil {
				t.Errorf("boundary value rejected: %v", err)
			}
		})
	}
}

func TestNormalizeRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*types.LocationRequest)
		wantField string
	}{
		{"empty location", func(r *types.LocationRequest) { r.Location = "" }, "location"},
		{"blank location", func(r *types.LocationRequest) { r.Location = "   " }, "location"},
		{"long location", func(r *types.LocationRequest) {
			name := make([]byte, MaxLocationLength+1)
			for i := range name {
				name[i] = 'x'
			}
			r.Location = string(name)
		}, "location"},
		{"latitude below range", func(r *types.LocationRequest) { r.Latitude = -90.5 }, "latitude"},
		{"latitude above range", func(r *types.LocationRequest) { r.Latitude = 90.5 }, "latitude"},
		{"longitude below range", func(r *types.LocationRequest) { r.Longitude = -180.5 }, "longitude"},
		{"longitude above range", func(r *types.LocationRequest) { r.Longitude = 180.5 }, "longitude"},
		{"empty time zone", func(r *types.LocationRequest) { r.TimeZone = "" }, "time_zone"},
		{"offset zero", func(r *types.LocationRequest) { r.CandleLightingOffset = 0 }, "candle_lighting_offset"},
		{"offset too large", func(r *types.LocationRequest) { r.CandleLightingOffset = 61 }, "candle_lighting_offset"},
		{"negative offset", func(r *types.LocationRequest) { r.CandleLightingOffset = -5 }, "candle_lighting_offset"},
		{"malformed date", func(r *types.LocationRequest) { r.Date = "June 21, 2024" }, "date"},
		{"impossible date", func(r *types.LocationRequest) { r.Date = "2024-13-40" }, "date"},
		{"unknown format", func(r *types.LocationRequest) { r.ResponseFormat = "xml" }, "response_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			_, err := Normalize(raw, fixedToday())
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *validation.Error, got %T", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q (%v)", tt.wantField, verr.Field, verr)
			}
		})
	}
}
