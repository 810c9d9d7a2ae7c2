package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jack-barr3tt/comboios/src/common/relay"
	"github.com/jack-barr3tt/comboios/src/common/types"
	"github.com/jack-barr3tt/comboios/src/common/upstream"
)

type fakeSource struct {
	stations  []types.Station
	timetable []types.Timetable
	train     *types.Train
	err       error

	calls    int
	lastName string
	lastID   string
	lastTID  uint16
}

func (f *fakeSource) SearchStations(_ context.Context, name string) ([]types.Station, error) {
	f.calls++
	f.lastName = name
	return f.stations, f.err
}

func (f *fakeSource) GetStationTimetable(_ context.Context, stationID string) ([]types.Timetable, error) {
	f.calls++
	f.lastID = stationID
	return f.timetable, f.err
}

func (f *fakeSource) GetTrainDetails(_ context.Context, trainID uint16) (*types.Train, error) {
	f.calls++
	f.lastTID = trainID
	return f.train, f.err
}

func ptr[T any](v T) *T { return &v }

func newApp(src Source, format string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{Ctx: context.Background(), Source: src, Out: out, Format: format}, out
}

func TestSearchTable(t *testing.T) {
	src := &fakeSource{stations: []types.Station{
		{Code: "9404006", Designation: "Porto - Campanha"},
		{Code: "9430007", Designation: "Lisboa - Santa Apolonia"},
	}}
	app, out := newApp(src, "table")

	require.NoError(t, (&SearchCmd{Name: "Porto"}).Run(app))

	assert.Equal(t, "Porto", src.lastName)
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "CODE")
	assert.Contains(t, string(lines[1]), "9404006")
	assert.Contains(t, string(lines[2]), "Lisboa - Santa Apolonia")
}

func TestSearchEmpty(t *testing.T) {
	app, out := newApp(&fakeSource{}, "table")

	require.NoError(t, (&SearchCmd{Name: "Nowhere"}).Run(app))
	assert.Equal(t, "No stations found.\n", out.String())
}

func TestStationTimetableTable(t *testing.T) {
	porto := types.Station{Code: "9404006", Designation: "Porto - Campanha"}
	lisboa := types.Station{Code: "9431039", Designation: "Lisboa - Oriente"}
	src := &fakeSource{timetable: []types.Timetable{{
		Origin:        porto,
		Destination:   lisboa,
		DepartureTime: ptr("10:05"),
		Platform:      ptr("3"),
		Delay:         ptr(int8(-2)),
		TrainNumber:   120,
	}}}
	app, out := newApp(src, "table")

	require.NoError(t, (&StationCmd{StationID: "9404006"}).Run(app))

	assert.Equal(t, "9404006", src.lastID)
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "OCCUPANCY")
	assert.Contains(t, string(lines[1]), "Porto - Campanha")
	assert.Contains(t, string(lines[1]), "10:05")
	assert.Contains(t, string(lines[1]), "-2")
	assert.Contains(t, string(lines[1]), "120")
}

func TestTrainRejectsMalformedID(t *testing.T) {
	for _, id := range []string{"abc", "-1", "65536", ""} {
		src := &fakeSource{}
		app, out := newApp(src, "table")

		err := (&TrainCmd{TrainID: id}).Run(app)

		assert.ErrorIs(t, err, upstream.ErrInvalidIdentifier, id)
		assert.Zero(t, src.calls, id)
		assert.Empty(t, out.String(), id)
	}
}

func TestTrainTable(t *testing.T) {
	src := &fakeSource{train: &types.Train{
		TrainNumber: 120,
		Delay:       ptr(int8(5)),
		Status:      ptr("IN_TRANSIT"),
		Stops: []types.Stopover{{
			Station:     types.Station{Code: "9404006", Designation: "Porto - Campanha"},
			ArrivalTime: ptr("10:00"),
			Latitude:    "41.14",
			Longitude:   "-8.58",
		}},
	}}
	app, out := newApp(src, "table")

	require.NoError(t, (&TrainCmd{TrainID: "120"}).Run(app))

	assert.Equal(t, uint16(120), src.lastTID)
	s := out.String()
	assert.Contains(t, s, "Train #120")
	assert.Contains(t, s, "Status: IN_TRANSIT")
	assert.Contains(t, s, "Delay: 5 min")
	assert.Contains(t, s, "Occupancy: \n")
	assert.Contains(t, s, "Porto - Campanha")
	assert.Contains(t, s, "41.14")
}

func TestJSONOutputUsesCanonicalNames(t *testing.T) {
	src := &fakeSource{timetable: []types.Timetable{{
		Origin:      types.Station{Code: "1", Designation: "A"},
		Destination: types.Station{Code: "2", Designation: "B"},
		TrainNumber: 7,
	}}}
	app, out := newApp(src, "json")

	require.NoError(t, (&StationCmd{StationID: "9404006"}).Run(app))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Contains(t, decoded[0], "train_origin")
	assert.Nil(t, decoded[0]["delay"])

	var back []types.Timetable
	require.NoError(t, json.Unmarshal(out.Bytes(), &back))
	assert.Equal(t, src.timetable, back)
}

func TestYAMLOutput(t *testing.T) {
	src := &fakeSource{stations: []types.Station{{Code: "9404006", Designation: "Porto - Campanha"}}}
	app, out := newApp(src, "yaml")

	require.NoError(t, (&SearchCmd{Name: "Porto"}).Run(app))

	var decoded []types.Station
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, src.stations, decoded)
	assert.Contains(t, out.String(), "designation: Porto - Campanha")
}

func TestSourceErrorsPropagate(t *testing.T) {
	src := &fakeSource{err: &upstream.HTTPStatusError{URL: "http://relay/stations", StatusCode: 500}}
	app, out := newApp(src, "table")

	err := (&SearchCmd{Name: "Porto"}).Run(app)

	assert.ErrorIs(t, err, upstream.ErrHTTPStatus)
	assert.Empty(t, out.String())
}

func TestUnknownFormat(t *testing.T) {
	app, _ := newApp(&fakeSource{}, "xml")

	assert.Error(t, (&SearchCmd{Name: "Porto"}).Run(app))
}

func TestNewSourceDefaultsToRelay(t *testing.T) {
	src, err := newSource(Globals{Relay: "http://relay.local", Timeout: time.Second})

	require.NoError(t, err)
	assert.IsType(t, &relay.Client{}, src)
}

func TestNewSourceDirect(t *testing.T) {
	src, err := newSource(Globals{Direct: true, Timeout: 3 * time.Second})

	require.NoError(t, err)
	direct, ok := src.(Direct)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, direct.API.Timeout())
}

func TestNewSourceDirectRejectsBadConfig(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	_, err := newSource(Globals{Direct: true, Timeout: time.Second})

	assert.Error(t, err)
}
