package hebcal

import "github.com/zmanim/mcp/internal/types"

// Calculator computes instant sets for validated requests. It is stateless:
// every Compute call constructs a fresh calculation context, queries each
// requested instant exactly once and discards the context.
type Calculator struct{}

// NewCalculator returns the hebcal-go backed calculator.
func NewCalculator() *Calculator { return &Calculator{} }

// Compute builds the calculation context for req and queries every instant
// in instants once. Instants the library has no value for are omitted from
// the result. A context construction failure aborts the whole request.
func (c *Calculator) Compute(req types.Request, instants []types.Instant) (types.ComputedTimes, error) {
	cal, err := NewCalendar(req)
	if err != nil {
		return nil, err
	}

	times := make(types.ComputedTimes, len(instants))
	for _, instant := range instants {
		if t, ok := cal.Query(instant); ok {
			times[instant] = t
		}
	}
	return times, nil
}
