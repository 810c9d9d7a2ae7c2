// Package relay is a client for the comboios REST relay.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jack-barr3tt/comboios/src/common/types"
	"github.com/jack-barr3tt/comboios/src/common/upstream"
)

const DefaultBaseURL = "http://localhost:3000"

type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logger     *zap.SugaredLogger
}

type envelope[T any] struct {
	Data T `json:"data"`
}

// errorBody is the relay's failure payload.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewClient talks to the relay at baseURL through httpClient. A nil client
// gets a fresh one.
func NewClient(baseURL string, httpClient *http.Client, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		logger:     logger,
	}
}

func (c *Client) SearchStations(ctx context.Context, name string) ([]types.Station, error) {
	query := url.Values{}
	query.Set("query", name)

	resp, err := upstream.Get[envelope[[]types.Station]](ctx, c.httpClient, c.baseURL+"/stations?"+query.Encode(), c.timeout, c.logger)
	if err != nil {
		return nil, fmt.Errorf("searching stations %q: %w", name, rejected(err, "station name", name))
	}
	return resp.Data, nil
}

func (c *Client) GetStationTimetable(ctx context.Context, stationID string) ([]types.Timetable, error) {
	endpoint := c.baseURL + "/stations/timetable/" + url.PathEscape(stationID)

	resp, err := upstream.Get[envelope[types.Timetables]](ctx, c.httpClient, endpoint, c.timeout, c.logger)
	if err != nil {
		return nil, fmt.Errorf("fetching timetable for station %s: %w", stationID, rejected(err, "station id", stationID))
	}
	return []types.Timetable(resp.Data), nil
}

func (c *Client) GetTrainDetails(ctx context.Context, trainID uint16) (*types.Train, error) {
	endpoint := fmt.Sprintf("%s/trains/%d", c.baseURL, trainID)

	resp, err := upstream.Get[envelope[types.Train]](ctx, c.httpClient, endpoint, c.timeout, c.logger)
	if err != nil {
		id := fmt.Sprint(trainID)
		return nil, fmt.Errorf("fetching train %d: %w", trainID, rejected(err, "train id", id))
	}
	return &resp.Data, nil
}

// rejected turns a 400 from the relay back into the identifier error the
// facade would have returned locally. Anything else passes through.
func rejected(err error, kind, value string) error {
	var statusErr *upstream.HTTPStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusBadRequest {
		return err
	}

	reason := "rejected by the relay"
	var body errorBody
	if json.Unmarshal(statusErr.Body, &body) == nil && body.Message != "" {
		prefix := (&upstream.InvalidIdentifierError{Kind: kind, Value: value}).Error()
		reason = strings.TrimPrefix(body.Message, prefix)
	}

	return &upstream.InvalidIdentifierError{Kind: kind, Value: value, Reason: reason}
}
