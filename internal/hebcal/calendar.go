// Package hebcal is the boundary to the external zmanim calculation library
// (github.com/hebcal/hebcal-go). It builds one calculation context per
// validated request and dispatches the named instant queries against it.
// No astronomical or halachic math lives here: fixed-offset instants are
// derived from the library's sunrise and sunset, everything else maps 1:1 to
// a library query method.
package hebcal

import (
	"fmt"
	"time"

	zman "github.com/hebcal/hebcal-go/zmanim"

	"github.com/zmanim/mcp/internal/types"
)

// Fixed-minute offsets used for dawn, nightfall and candle lighting. Dawn and
// nightfall follow the 72-minute opinion; candle lighting uses the offset
// carried by the request.
const (
	alosOffsetMinutes  = 72
	tzeisOffsetMinutes = 72
)

// CalculationError reports that the external library rejected the
// constructed context or could not serve a query. It is a failed invocation,
// distinct from a legitimately absent instant.
type CalculationError struct {
	Reason string
	Err    error
}

func (e *CalculationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("zmanim calculation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("zmanim calculation failed: %s", e.Reason)
}

func (e *CalculationError) Unwrap() error { return e.Err }

// Calendar is the per-request calculation context. One is built per tool
// invocation and discarded with it; contexts are never reused or cached.
type Calendar struct {
	z            zman.Zmanim
	candleOffset int
}

// NewCalendar builds a calculation context for the request's location and
// date. The timezone identifier is resolved against the timezone database
// here; an unknown identifier is a construction failure.
func NewCalendar(req types.Request) (*Calendar, error) {
	loc, err := time.LoadLocation(req.TimeZone)
	if err != nil {
		return nil, &CalculationError{
			Reason: fmt.Sprintf("unknown timezone %q", req.TimeZone),
			Err:    err,
		}
	}

	geo := zman.NewLocation(req.Location, "", req.Latitude, req.Longitude, 0, req.TimeZone)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)

	return &Calendar{
		z:            zman.New(&geo, date),
		candleOffset: req.CandleLightingOffset,
	}, nil
}

// Query returns the timestamp for a named instant, or ok=false when the
// library legitimately has no value for it (e.g. the sun neither rises nor
// sets at extreme latitudes). Absence is not an error.
func (c *Calendar) Query(instant types.Instant) (time.Time, bool) {
	var t time.Time
	switch instant {
	case types.Sunrise:
		t = c.z.Sunrise()
	case types.Sunset:
		t = c.z.Sunset()
	case types.AlosHashachar72:
		t = offsetFrom(c.z.Sunrise(), -alosOffsetMinutes)
	case types.TzeisHakochavim72:
		t = offsetFrom(c.z.Sunset(), tzeisOffsetMinutes)
	case types.CandleLighting:
		t = offsetFrom(c.z.Sunset(), -c.candleOffset)
	case types.SofZmanShemaGRA:
		t = c.z.SofZmanShma()
	case types.SofZmanShemaMGA:
		t = c.z.SofZmanShmaMGA()
	case types.SofZmanTefilaGRA:
		t = c.z.SofZmanTfilla()
	case types.SofZmanTefilaMGA:
		t = c.z.SofZmanTfillaMGA()
	case types.Chatzos:
		t = c.z.Chatzot()
	case types.MinchaGedola:
		t = c.z.MinchaGedola()
	case types.MinchaKetana:
		t = c.z.MinchaKetana()
	case types.PlagHamincha:
		t = c.z.PlagHaMincha()
	}
	return t, !t.IsZero()
}

// offsetFrom shifts a base event by a fixed number of minutes, propagating
// absence when the base event itself never occurs.
func offsetFrom(base time.Time, minutes int) time.Time {
	if base.IsZero() {
		return base
	}
	return base.Add(time.Duration(minutes) * time.Minute)
}
