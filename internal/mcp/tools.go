package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zmanim/mcp/internal/render"
	"github.com/zmanim/mcp/internal/types"
)

// toolDef binds an MCP tool declaration to the fixed set of instants it
// queries and the document layout it renders. Every tool runs through the
// same pipeline; the definitions below are the only per-tool variation.
type toolDef struct {
	tool mcp.Tool
	// instants are queried exactly once per invocation, in order.
	instants []types.Instant
	// acceptsOffset marks tools that read candle_lighting_offset from the
	// request instead of using the configured default.
	acceptsOffset bool
	// layout produces the response document for a validated request.
	layout func(req types.Request) render.Document
}

// locationParams returns the request parameters shared by every zmanim tool.
func locationParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Name of the location (e.g., 'Jerusalem', 'New York, NY', 'London')"),
		),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude coordinate in decimal degrees, -90 to 90 (e.g., 40.7128 for New York)"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude coordinate in decimal degrees, -180 to 180 (e.g., -74.0060 for New York)"),
		),
		mcp.WithString("time_zone",
			mcp.Required(),
			mcp.Description("IANA timezone identifier (e.g., 'America/New_York', 'Asia/Jerusalem', 'Europe/London')"),
		),
		mcp.WithString("date",
			mcp.Description("Optional date for calculations in YYYY-MM-DD format (defaults to today)"),
		),
		mcp.WithString("response_format",
			mcp.Description("Output format: 'markdown' for human-readable or 'json' for machine-readable (default: markdown)"),
			mcp.Enum(string(types.FormatMarkdown), string(types.FormatJSON)),
		),
	}
}

// readOnlyAnnotations marks a tool as a safe, idempotent, closed-world
// query. All zmanim tools share these hints.
func readOnlyAnnotations(title string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	}
}

func newZmanimTool(name, title, description string, extra ...mcp.ToolOption) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(description)}
	opts = append(opts, readOnlyAnnotations(title)...)
	opts = append(opts, locationParams()...)
	opts = append(opts, extra...)
	return mcp.NewTool(name, opts...)
}

// toolDefs declares the six zmanim tools.
func toolDefs() []toolDef {
	return []toolDef{
		{
			tool: newZmanimTool("zmanim_get_sunrise_sunset",
				"Get Sunrise and Sunset Times",
				"Get sunrise and sunset times for a specified location and date, based on astronomical calculations for the given coordinates."),
			instants: []types.Instant{types.Sunrise, types.Sunset},
			layout: func(types.Request) render.Document {
				return render.Document{
					Title: "Sunrise and Sunset Times",
					Sections: []render.Section{{
						Rows: []render.Row{
							{Instant: types.Sunrise, Label: "Sunrise"},
							{Instant: types.Sunset, Label: "Sunset"},
						},
					}},
				}
			},
		},
		{
			tool: newZmanimTool("zmanim_get_shema_times",
				"Get Latest Times for Shema",
				"Get the latest times for reciting the morning Shema according to the GR\"A (3 hours after sunrise) and the MG\"A (3 temporal hours from dawn)."),
			instants: []types.Instant{types.SofZmanShemaGRA, types.SofZmanShemaMGA},
			layout: func(types.Request) render.Document {
				return render.Document{
					Title: "Latest Times for Shema",
					Sections: []render.Section{{
						Heading: "Opinions",
						Rows: []render.Row{
							{Instant: types.SofZmanShemaGRA, Label: "GR\"A (Vilna Gaon)"},
							{Instant: types.SofZmanShemaMGA, Label: "MG\"A (Magen Avraham)"},
						},
					}},
					Notes: []string{"The MG\"A time is typically earlier and is the more stringent opinion."},
				}
			},
		},
		{
			tool: newZmanimTool("zmanim_get_tefila_times",
				"Get Latest Times for Morning Prayer",
				"Get the latest times for the morning prayer (Tefila/Shacharis) according to the GR\"A (4 hours after sunrise) and the MG\"A (4 temporal hours from dawn)."),
			instants: []types.Instant{types.SofZmanTefilaGRA, types.SofZmanTefilaMGA},
			layout: func(types.Request) render.Document {
				return render.Document{
					Title: "Latest Times for Morning Prayer (Tefila)",
					Sections: []render.Section{{
						Heading: "Opinions",
						Rows: []render.Row{
							{Instant: types.SofZmanTefilaGRA, Label: "GR\"A (Vilna Gaon)"},
							{Instant: types.SofZmanTefilaMGA, Label: "MG\"A (Magen Avraham)"},
						},
					}},
					Notes: []string{"The MG\"A time is typically earlier."},
				}
			},
		},
		{
			tool: newZmanimTool("zmanim_get_mincha_times",
				"Get Times for Mincha Prayer",
				"Get the afternoon prayer window: Chatzos (midday), Mincha Gedola (earliest), Mincha Ketana (preferred earliest) and Plag HaMincha."),
			instants: []types.Instant{
				types.Chatzos, types.MinchaGedola, types.MinchaKetana, types.PlagHamincha,
			},
			layout: func(types.Request) render.Document {
				return render.Document{
					Title: "Mincha (Afternoon Prayer) Times",
					Sections: []render.Section{{
						Heading: "Times",
						Rows: []render.Row{
							{Instant: types.Chatzos, Label: "Chatzos (Midday)"},
							{Instant: types.MinchaGedola, Label: "Mincha Gedola (Earliest)"},
							{Instant: types.MinchaKetana, Label: "Mincha Ketana (Preferred)"},
							{Instant: types.PlagHamincha, Label: "Plag HaMincha"},
						},
					}},
					Notes: []string{"Mincha can be prayed from Mincha Gedola until sunset, with Mincha Ketana being the preferred earliest time."},
				}
			},
		},
		{
			tool: newZmanimTool("zmanim_get_shabbat_times",
				"Get Shabbat Candle Lighting and Havdalah Times",
				"Get Shabbat candle lighting time (before sunset, per community custom), sunset, and Havdalah (Tzeis HaKochavim, 72 minutes after sunset).",
				mcp.WithNumber("candle_lighting_offset",
					mcp.Description("Minutes before sunset to light candles, 1 to 60 (default 18; typically 18-40 depending on custom)"),
				),
			),
			instants: []types.Instant{
				types.CandleLighting, types.Sunset, types.TzeisHakochavim72,
			},
			acceptsOffset: true,
			layout: func(req types.Request) render.Document {
				havdalah := render.Row{
					Instant: types.TzeisHakochavim72,
					Label:   "Havdalah (Tzeis HaKochavim)",
					Detail:  "(72 minutes after sunset)",
					Key:     "havdalah_tzeis_72",
				}
				return render.Document{
					Title: "Shabbat Times",
					Sections: []render.Section{
						{
							Heading: "Friday Evening",
							Rows: []render.Row{
								{
									Instant: types.CandleLighting,
									Label:   "Candle Lighting",
									Detail:  fmt.Sprintf("(%d minutes before sunset)", req.CandleLightingOffset),
								},
								{Instant: types.Sunset, Label: "Sunset (Shabbat Begins)"},
							},
						},
						{
							Heading: "Saturday Evening",
							Rows: []render.Row{
								havdalah,
								{Instant: types.TzeisHakochavim72, Label: "Shabbat Ends", Key: "havdalah_tzeis_72"},
							},
						},
					},
					Notes: []string{"Candle lighting customs vary by community. Jerusalem uses 40 minutes before sunset."},
					Extras: []render.Field{
						{Key: "candle_lighting_offset_minutes", Value: req.CandleLightingOffset},
					},
				}
			},
		},
		{
			tool: newZmanimTool("zmanim_get_daily_times",
				"Get All Daily Zmanim",
				"Get the complete set of daily zmanim for a location: dawn, sunrise, Shema and Tefila deadlines (GR\"A and MG\"A), midday, the Mincha window, sunset and nightfall."),
			instants: []types.Instant{
				types.AlosHashachar72, types.Sunrise,
				types.SofZmanShemaGRA, types.SofZmanShemaMGA,
				types.SofZmanTefilaGRA, types.SofZmanTefilaMGA,
				types.Chatzos, types.MinchaGedola, types.MinchaKetana, types.PlagHamincha,
				types.Sunset, types.TzeisHakochavim72,
			},
			layout: func(types.Request) render.Document {
				return render.Document{
					Title:   "Daily Zmanim",
					Grouped: true,
					Sections: []render.Section{
						{
							Heading: "Morning Times",
							Rows: []render.Row{
								{Instant: types.AlosHashachar72, Label: "Alos HaShachar (Dawn)", Detail: "(72 minutes before sunrise)"},
								{Instant: types.Sunrise, Label: "Sunrise"},
								{Instant: types.SofZmanShemaGRA, Label: "Latest Shema (GR\"A)"},
								{Instant: types.SofZmanShemaMGA, Label: "Latest Shema (MG\"A)"},
								{Instant: types.SofZmanTefilaGRA, Label: "Latest Tefila (GR\"A)"},
								{Instant: types.SofZmanTefilaMGA, Label: "Latest Tefila (MG\"A)"},
							},
						},
						{
							Heading: "Afternoon Times",
							Rows: []render.Row{
								{Instant: types.Chatzos, Label: "Chatzos (Midday)"},
								{Instant: types.MinchaGedola, Label: "Mincha Gedola"},
								{Instant: types.MinchaKetana, Label: "Mincha Ketana"},
								{Instant: types.PlagHamincha, Label: "Plag HaMincha"},
							},
						},
						{
							Heading: "Evening Times",
							Rows: []render.Row{
								{Instant: types.Sunset, Label: "Sunset"},
								{Instant: types.TzeisHakochavim72, Label: "Tzeis HaKochavim (Nightfall)", Detail: "(72 minutes after sunset)"},
							},
						},
					},
				}
			},
		},
	}
}
