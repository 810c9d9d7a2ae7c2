package comboios

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jack-barr3tt/comboios/src/common/upstream"
)

type recorder struct {
	calls atomic.Int32
	last  atomic.Pointer[http.Request]
}

func newUpstream(t *testing.T, body string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.calls.Add(1)
		rec.last.Store(r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestSearchStations(t *testing.T) {
	srv, rec := newUpstream(t, `{"response": [{"NodeID": 1234, "Nome": "Lisboa"}, {"NodeID": "9436004", "Nome": "Lisboa - Entrecampos"}]}`)
	api := New().WithBaseURLs(srv.URL, srv.URL)

	stations, err := api.SearchStations(context.Background(), "Lisboa")

	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "1234", stations[0].Code)
	assert.Equal(t, "Lisboa", stations[0].Designation)
	assert.Equal(t, "9436004", stations[1].Code)

	req := rec.last.Load()
	assert.Equal(t, "/negocios-e-servicos/estacao-nome/Lisboa", req.URL.Path)
	assert.Equal(t, upstream.BrowserUserAgent, req.Header.Get("User-Agent"))
}

func TestSearchStationsEscapesName(t *testing.T) {
	srv, rec := newUpstream(t, `{"response": []}`)
	api := New().WithBaseURLs(srv.URL, srv.URL)

	stations, err := api.SearchStations(context.Background(), "Santa Apolónia")

	require.NoError(t, err)
	assert.Empty(t, stations)
	assert.Equal(t, "/negocios-e-servicos/estacao-nome/Santa Apolónia", rec.last.Load().URL.Path)
}

func TestGetStationTimetableSplitsIdentifier(t *testing.T) {
	srv, rec := newUpstream(t, `[{"trainNumber": 1234,
		"trainOrigin": {"code": "9402006", "designation": "Braga"},
		"trainDestination": {"code": "9431039", "designation": "Lisboa - Oriente"}}]`)
	api := New().WithBaseURLs(srv.URL, srv.URL)

	timetable, err := api.GetStationTimetable(context.Background(), "9431039")

	require.NoError(t, err)
	require.Len(t, timetable, 1)
	assert.Equal(t, uint32(1234), timetable[0].TrainNumber)

	req := rec.last.Load()
	assert.Equal(t, "/station/trains", req.URL.Path)
	assert.Equal(t, "94-31039", req.URL.Query().Get("stationId"))
}

func TestGetStationTimetableRejectsShortIdentifier(t *testing.T) {
	srv, rec := newUpstream(t, `[]`)
	api := New().WithBaseURLs(srv.URL, srv.URL)

	for _, id := range []string{"", "9", "94"} {
		_, err := api.GetStationTimetable(context.Background(), id)
		assert.ErrorIs(t, err, upstream.ErrInvalidIdentifier, id)
	}
	assert.Zero(t, rec.calls.Load())
}

func TestGetStationTimetableNullBody(t *testing.T) {
	srv, _ := newUpstream(t, `null`)
	api := New().WithBaseURLs(srv.URL, srv.URL)

	timetable, err := api.GetStationTimetable(context.Background(), "9431039")

	assert.Nil(t, timetable)
	assert.ErrorIs(t, err, upstream.ErrDeserialization)
}

func TestGetStationTimetableEmptyList(t *testing.T) {
	srv, _ := newUpstream(t, `[]`)
	api := New().WithBaseURLs(srv.URL, srv.URL)

	timetable, err := api.GetStationTimetable(context.Background(), "9431039")

	require.NoError(t, err)
	assert.Empty(t, timetable)
}

func TestFormatStationID(t *testing.T) {
	tests := map[string]string{
		"943":     "94-3",
		"9431039": "94-31039",
	}
	for in, want := range tests {
		got, err := FormatStationID(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestGetTrainDetails(t *testing.T) {
	srv, rec := newUpstream(t, `{"trainNumber": 531, "status": "IN_TRANSIT", "trainStops": [
		{"station": {"code": 9402006, "designation": "Braga"}, "latitude": "41.5", "longitude": "-8.4"}
	]}`)
	api := New().WithBaseURLs(srv.URL, srv.URL)

	train, err := api.GetTrainDetails(context.Background(), 531)

	require.NoError(t, err)
	assert.Equal(t, uint32(531), train.TrainNumber)
	require.Len(t, train.Stops, 1)
	assert.Equal(t, "9402006", train.Stops[0].Station.Code)

	req := rec.last.Load()
	assert.Equal(t, "/station/trains/train", req.URL.Path)
	assert.Equal(t, "531", req.URL.Query().Get("trainId"))
}

func TestParseTrainID(t *testing.T) {
	id, err := ParseTrainID("65535")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), id)

	for _, bad := range []string{"", "abc", "-1", "65536", " 12", "1.5"} {
		_, err := ParseTrainID(bad)
		assert.ErrorIs(t, err, upstream.ErrInvalidIdentifier, bad)
	}
}

func TestUpstreamStatusPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	api := New().WithBaseURLs(srv.URL, srv.URL)

	train, err := api.GetTrainDetails(context.Background(), 1)

	assert.Nil(t, train)
	var statusErr *upstream.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestCallTimeoutOverridesDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	api := New().WithBaseURLs(srv.URL, srv.URL)

	start := time.Now()
	_, err := api.SearchStations(context.Background(), "Porto", Timeout(20*time.Millisecond))

	assert.ErrorIs(t, err, upstream.ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDefaultTimeoutApplies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	api := New().WithBaseURLs(srv.URL, srv.URL).WithTimeout(20 * time.Millisecond)

	_, err := api.GetStationTimetable(context.Background(), "9431039")

	assert.ErrorIs(t, err, upstream.ErrTimeout)
}

func TestBuildersDoNotMutateReceiver(t *testing.T) {
	base := New()
	custom := &http.Client{}

	tuned := base.WithTimeout(15 * time.Second).WithClient(custom).WithBaseURLs("http://stations", "")

	assert.Equal(t, DefaultTimeout, base.Timeout())
	assert.Equal(t, StationsBaseURL, base.stationsBase)
	assert.Equal(t, 15*time.Second, tuned.Timeout())
	assert.Same(t, custom, tuned.client)
	assert.Equal(t, "http://stations", tuned.stationsBase)
	assert.Equal(t, TrainsBaseURL, tuned.trainsBase)
	assert.NotSame(t, custom, base.client)
}
