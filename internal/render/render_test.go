package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/zmanim/mcp/internal/types"
)

func testRequest() types.Request {
	return types.Request{
		Location:             "New York, NY",
		Latitude:             40.7128,
		Longitude:            -74.0060,
		TimeZone:             "America/New_York",
		Date:                 time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC),
		Format:               types.FormatMarkdown,
		CandleLightingOffset: 18,
	}
}

func testDocument() Document {
	return Document{
		Title: "Sunrise and Sunset Times",
		Sections: []Section{{
			Rows: []Row{
				{Instant: types.Sunrise, Label: "Sunrise"},
				{Instant: types.Sunset, Label: "Sunset"},
			},
		}},
	}
}

func testTimes() types.ComputedTimes {
	loc, _ := time.LoadLocation("America/New_York")
	return types.ComputedTimes{
		types.Sunrise: time.Date(2024, time.June, 21, 5, 25, 0, 0, loc),
		types.Sunset:  time.Date(2024, time.June, 21, 20, 30, 0, 0, loc),
	}
}

func TestMarkdownDocument(t *testing.T) {
	out := Markdown(testDocument(), testRequest(), testTimes())

	for _, want := range []string{
		"# Sunrise and Sunset Times\n",
		"**Location:** New York, NY  \n",
		"**Date:** June 21, 2024  \n",
		"**Timezone:** America/New_York\n",
		"- **Sunrise:** 05:25 AM\n",
		"- **Sunset:** 08:30 PM\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, NotAvailable) {
		t.Errorf("unexpected N/A in output:\n%s", out)
	}
}

func TestMarkdownSectionsAndNotes(t *testing.T) {
	doc := Document{
		Title: "Latest Times for Shema",
		Sections: []Section{{
			Heading: "Opinions",
			Rows: []Row{
				{Instant: types.SofZmanShemaGRA, Label: "GR\"A (Vilna Gaon)"},
			},
		}},
		Notes: []string{"The MG\"A time is typically earlier."},
	}

	out := Markdown(doc, testRequest(), types.ComputedTimes{})

	if !strings.Contains(out, "## Opinions:\n") {
		t.Errorf("missing section heading:\n%s", out)
	}
	if !strings.Contains(out, "- **GR\"A (Vilna Gaon):** N/A\n") {
		t.Errorf("absent instant should render N/A:\n%s", out)
	}
	if !strings.Contains(out, "*Note: The MG\"A time is typically earlier.*\n") {
		t.Errorf("missing note:\n%s", out)
	}
}

func TestMarkdownRowDetail(t *testing.T) {
	doc := Document{
		Title: "Shabbat Times",
		Sections: []Section{{
			Rows: []Row{
				{Instant: types.Sunset, Label: "Sunset (Shabbat Begins)", Detail: "(18 minutes before sunset)"},
			},
		}},
	}

	out := Markdown(doc, testRequest(), testTimes())
	if !strings.Contains(out, "- **Sunset (Shabbat Begins):** 08:30 PM (18 minutes before sunset)\n") {
		t.Errorf("row detail not rendered:\n%s", out)
	}
}

func TestJSONDocument(t *testing.T) {
	out, err := JSON(testDocument(), testRequest(), testTimes())
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	wantKeys := []string{"location", "date", "timezone", "sunrise", "sunrise_iso", "sunset", "sunset_iso"}
	if len(decoded) != len(wantKeys) {
		t.Errorf("expected %d keys, got %d: %v", len(wantKeys), len(decoded), decoded)
	}
	for _, key := range wantKeys {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q in %v", key, decoded)
		}
	}

	if decoded["date"] != "2024-06-21" {
		t.Errorf("unexpected date %v", decoded["date"])
	}
	if decoded["sunrise"] != "2024-06-21 05:25 AM" {
		t.Errorf("unexpected sunrise %v", decoded["sunrise"])
	}
	isoValue, ok := decoded["sunrise_iso"].(string)
	if !ok {
		t.Fatalf("sunrise_iso is not a string: %v", decoded["sunrise_iso"])
	}
	if _, err := time.Parse(time.RFC3339, isoValue); err != nil {
		t.Errorf("sunrise_iso is not RFC 3339: %v", err)
	}
}

func TestJSONAbsentInstantIsNull(t *testing.T) {
	times := testTimes()
	delete(times, types.Sunset)

	out, err := JSON(testDocument(), testRequest(), times)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["sunset"] != NotAvailable {
		t.Errorf("expected sunset %q, got %v", NotAvailable, decoded["sunset"])
	}
	value, present := decoded["sunset_iso"]
	if !present {
		t.Fatal("sunset_iso key missing")
	}
	if value != nil {
		t.Errorf("expected null sunset_iso, got %v", value)
	}
}

func TestJSONGroupedDocument(t *testing.T) {
	doc := testDocument()
	doc.Grouped = true

	out, err := JSON(doc, testRequest(), testTimes())
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded struct {
		Location string            `json:"location"`
		Times    map[string]string `json:"times"`
		TimesISO map[string]any    `json:"times_iso"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Times["sunrise"] != "2024-06-21 05:25 AM" {
		t.Errorf("unexpected grouped sunrise %q", decoded.Times["sunrise"])
	}
	if decoded.TimesISO["sunset"] == nil {
		t.Error("expected grouped sunset_iso value")
	}
}

func TestJSONExtrasAndKeyOverride(t *testing.T) {
	doc := Document{
		Title: "Shabbat Times",
		Sections: []Section{{
			Rows: []Row{
				{Instant: types.TzeisHakochavim72, Label: "Havdalah", Key: "havdalah_tzeis_72"},
				{Instant: types.TzeisHakochavim72, Label: "Shabbat Ends", Key: "havdalah_tzeis_72"},
			},
		}},
		Extras: []Field{{Key: "candle_lighting_offset_minutes", Value: 18}},
	}

	out, err := JSON(doc, testRequest(), types.ComputedTimes{})
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["candle_lighting_offset_minutes"] != float64(18) {
		t.Errorf("missing echoed offset: %v", decoded)
	}
	if _, ok := decoded["havdalah_tzeis_72"]; !ok {
		t.Errorf("key override not applied: %v", decoded)
	}
	if _, ok := decoded[string(types.TzeisHakochavim72)]; ok {
		t.Errorf("instant key should have been overridden: %v", decoded)
	}
}
