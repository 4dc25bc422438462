package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/zmanim/mcp/internal/logging"
	"github.com/zmanim/mcp/internal/render"
	"github.com/zmanim/mcp/internal/types"
	"github.com/zmanim/mcp/internal/validation"
)

// Engine computes a set of named instants for a validated request. The
// hebcal package provides the production implementation; tests substitute
// stubs to exercise absent-value and failure paths.
type Engine interface {
	Compute(req types.Request, instants []types.Instant) (types.ComputedTimes, error)
}

// ZmanimTool owns the shared request pipeline behind every registered tool:
// bind arguments, validate, compute, render. It holds no per-request state.
type ZmanimTool struct {
	engine        Engine
	defaultOffset int
	now           func() time.Time
	log           logging.Logger
}

// NewZmanimTool wires the pipeline. defaultOffset is the candle-lighting
// offset applied when a request does not specify one.
func NewZmanimTool(engine Engine, defaultOffset int, log logging.Logger) *ZmanimTool {
	return &ZmanimTool{
		engine:        engine,
		defaultOffset: defaultOffset,
		now:           time.Now,
		log:           log,
	}
}

// makeHandler returns the MCP handler for one tool definition. The pipeline
// is identical for every tool; def supplies the instant set and layout.
//
// A validation failure becomes a tool error result before any computation,
// a calculation failure fails the invocation outright, and an absent instant
// is handled by the renderer and is never an error.
func (zt *ZmanimTool) makeHandler(def toolDef) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		raw, err := zt.bindRequest(request, def.acceptsOffset)
		if err != nil {
			return newToolError(err.Error()), nil
		}
		req, err := validation.Normalize(raw, zt.now())
		if err != nil {
			zt.log.Debug("request rejected", "tool", def.tool.Name, "reason", err.Error())
			return newToolError(err.Error()), nil
		}

		times, err := zt.engine.Compute(req, def.instants)
		if err != nil {
			zt.log.Error(err, "calculation failed",
				"tool", def.tool.Name, "location", req.Location, "time_zone", req.TimeZone)
			return nil, err
		}

		doc := def.layout(req)
		var text string
		if req.Format == types.FormatJSON {
			text, err = render.JSON(doc, req, times)
			if err != nil {
				return nil, err
			}
		} else {
			text = render.Markdown(doc, req, times)
		}

		zt.log.Info("tool served",
			"tool", def.tool.Name,
			"location", req.Location,
			"date", req.Date.Format(validation.DateLayout),
			"format", string(req.Format),
			"duration", time.Since(start).String(),
		)
		return newTextResult(text), nil
	}
}

// bindRequest extracts the raw request from the MCP arguments. Latitude and
// longitude must be present as numbers - zero is a valid coordinate, so a
// missing value cannot fall through to the zero value. String fields fall
// through to empty strings and are rejected during validation.
func (zt *ZmanimTool) bindRequest(request mcp.CallToolRequest, acceptsOffset bool) (types.LocationRequest, error) {
	args := request.GetArguments()

	lat, ok := args["latitude"].(float64)
	if !ok {
		return types.LocationRequest{}, &validation.Error{Field: "latitude", Message: "must be provided as a number"}
	}
	lon, ok := args["longitude"].(float64)
	if !ok {
		return types.LocationRequest{}, &validation.Error{Field: "longitude", Message: "must be provided as a number"}
	}

	raw := types.LocationRequest{
		Latitude:             lat,
		Longitude:            lon,
		CandleLightingOffset: zt.defaultOffset,
	}
	raw.Location, _ = args["location"].(string)
	raw.TimeZone, _ = args["time_zone"].(string)
	raw.Date, _ = args["date"].(string)
	raw.ResponseFormat, _ = args["response_format"].(string)

	if acceptsOffset {
		if v, present := args["candle_lighting_offset"]; present {
			offset, isNumber := v.(float64)
			if !isNumber {
				return types.LocationRequest{}, &validation.Error{Field: "candle_lighting_offset", Message: "must be a number"}
			}
			raw.CandleLightingOffset = int(offset)
		}
	}
	return raw, nil
}
