package comboios

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jack-barr3tt/comboios/src/common/types"
	"github.com/jack-barr3tt/comboios/src/common/upstream"
)

// SearchStations returns the stations whose name matches, in upstream order.
// An empty list is a valid result.
func (a *API) SearchStations(ctx context.Context, name string, opts ...CallOption) ([]types.Station, error) {
	cfg := a.callConfig(opts)
	endpoint := fmt.Sprintf("%s/negocios-e-servicos/estacao-nome/%s", a.stationsBase, url.PathEscape(name))

	response, err := upstream.Get[types.StationResponse](ctx, a.client, endpoint, cfg.timeout, a.logger)
	if err != nil {
		return nil, fmt.Errorf("searching stations %q: %w", name, err)
	}

	return response.Response, nil
}

// GetStationTimetable returns the trains passing the station.
func (a *API) GetStationTimetable(ctx context.Context, stationID string, opts ...CallOption) ([]types.Timetable, error) {
	formatted, err := FormatStationID(stationID)
	if err != nil {
		return nil, err
	}

	cfg := a.callConfig(opts)
	query := url.Values{}
	query.Set("stationId", formatted)
	endpoint := fmt.Sprintf("%s/station/trains?%s", a.trainsBase, query.Encode())

	timetable, err := upstream.Get[types.Timetables](ctx, a.client, endpoint, cfg.timeout, a.logger)
	if err != nil {
		return nil, fmt.Errorf("fetching timetable for station %s: %w", stationID, err)
	}

	return []types.Timetable(timetable), nil
}

// FormatStationID turns a station code such as 9431039 into the compound
// 94-31039 form the timetable endpoint expects.
func FormatStationID(stationID string) (string, error) {
	runes := []rune(stationID)
	if len(runes) < 3 {
		return "", &upstream.InvalidIdentifierError{
			Kind:   "station id",
			Value:  stationID,
			Reason: "must be at least 3 characters",
		}
	}
	return string(runes[:2]) + "-" + string(runes[2:]), nil
}
