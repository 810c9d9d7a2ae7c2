// Package tools exposes the comboios facade as MCP tools. Every tool answers
// with the JSON form of its result, or with an error result when the call
// fails.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/jack-barr3tt/comboios/src/common/comboios"
	"github.com/jack-barr3tt/comboios/src/common/upstream"
)

const (
	ToolStationsByName   = "get_stations_by_name"
	ToolStationTimetable = "get_station_timetable"
	ToolTrainDetails     = "get_train_details"

	Instructions = "This server provides tools to retrieve stations and trains from Comboios de Portugal"
)

type Toolbox struct {
	api    *comboios.API
	logger *zap.SugaredLogger
}

func NewToolbox(api *comboios.API, logger *zap.SugaredLogger) *Toolbox {
	return &Toolbox{api: api, logger: logger}
}

func NewServer(toolbox *Toolbox, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"comboios-mcp",
		version,
		server.WithToolCapabilities(false),
		server.WithInstructions(Instructions),
		server.WithRecovery(),
	)
	toolbox.Register(s)
	return s
}

func (t *Toolbox) Register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool(ToolStationsByName,
		mcp.WithDescription("Get stations by name"),
		mcp.WithString("station_name",
			mcp.Required(),
			mcp.Description("Full or partial station name, e.g. Lisboa"),
		),
	), t.GetStationsByName)

	s.AddTool(mcp.NewTool(ToolStationTimetable,
		mcp.WithDescription("Get station timetable by station id"),
		mcp.WithString("station_id",
			mcp.Required(),
			mcp.Description("Station code as returned by get_stations_by_name, e.g. 9431039"),
		),
	), t.GetStationTimetable)

	s.AddTool(mcp.NewTool(ToolTrainDetails,
		mcp.WithDescription("Get train details by train id"),
		mcp.WithNumber("train_id",
			mcp.Required(),
			mcp.Description("Train number as shown in a station timetable"),
			mcp.Min(0),
			mcp.Max(math.MaxUint16),
		),
	), t.GetTrainDetails)
}

func (t *Toolbox) GetStationsByName(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("station_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	stations, err := t.api.SearchStations(ctx, name)
	return t.result(ToolStationsByName, stations, err)
}

func (t *Toolbox) GetStationTimetable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stationID, err := req.RequireString("station_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	timetable, err := t.api.GetStationTimetable(ctx, stationID)
	return t.result(ToolStationTimetable, timetable, err)
}

func (t *Toolbox) GetTrainDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireFloat("train_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	trainID, err := trainIDFromNumber(raw)
	if err != nil {
		return t.result(ToolTrainDetails, nil, err)
	}

	train, err := t.api.GetTrainDetails(ctx, trainID)
	return t.result(ToolTrainDetails, train, err)
}

// JSON numbers arrive as float64.
func trainIDFromNumber(v float64) (uint16, error) {
	if v < 0 || v > math.MaxUint16 || v != math.Trunc(v) {
		return 0, &upstream.InvalidIdentifierError{
			Kind:   "train id",
			Value:  fmt.Sprint(v),
			Reason: "must be an integer between 0 and 65535",
		}
	}
	return uint16(v), nil
}

func (t *Toolbox) result(tool string, value any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		t.logger.Errorw("tool call failed", "tool", tool, "error", err, "client_error", upstream.IsClientError(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding %s result: %w", tool, err)
	}

	t.logger.Debugw("tool call", "tool", tool, "bytes", len(payload))
	return mcp.NewToolResultText(string(payload)), nil
}
