// Package comboios is the entry point to the CP railway data: station search,
// station timetables and train details.
//
// An API is immutable once built. The builder methods return a modified copy,
// so one value can be shared by every request handler.
package comboios

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	StationsBaseURL = "https://www.infraestruturasdeportugal.pt"
	TrainsBaseURL   = "https://www.cp.pt/sites/spring"

	DefaultTimeout = 10 * time.Second
)

type API struct {
	client       *http.Client
	timeout      time.Duration
	stationsBase string
	trainsBase   string
	logger       *zap.SugaredLogger
}

type Option func(*API)

func New(opts ...Option) *API {
	api := &API{
		client:       &http.Client{},
		timeout:      DefaultTimeout,
		stationsBase: StationsBaseURL,
		trainsBase:   TrainsBaseURL,
		logger:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

func (a *API) with(opt Option) *API {
	clone := *a
	opt(&clone)
	return &clone
}

func (a *API) WithClient(client *http.Client) *API {
	return a.with(Client(client))
}

func (a *API) WithTimeout(timeout time.Duration) *API {
	return a.with(DefaultRequestTimeout(timeout))
}

func (a *API) WithBaseURLs(stations, trains string) *API {
	return a.with(BaseURLs(stations, trains))
}

func (a *API) WithLogger(logger *zap.SugaredLogger) *API {
	return a.with(Logger(logger))
}

func (a *API) Timeout() time.Duration {
	return a.timeout
}

func Client(client *http.Client) Option {
	return func(a *API) {
		if client != nil {
			a.client = client
		}
	}
}

func DefaultRequestTimeout(timeout time.Duration) Option {
	return func(a *API) {
		if timeout > 0 {
			a.timeout = timeout
		}
	}
}

// BaseURLs points the API at different hosts, e.g. a local mock. Empty
// values keep the current host.
func BaseURLs(stations, trains string) Option {
	return func(a *API) {
		if stations != "" {
			a.stationsBase = stations
		}
		if trains != "" {
			a.trainsBase = trains
		}
	}
}

func Logger(logger *zap.SugaredLogger) Option {
	return func(a *API) {
		if logger != nil {
			a.logger = logger
		}
	}
}

type callConfig struct {
	timeout time.Duration
}

// CallOption tunes a single call.
type CallOption func(*callConfig)

// Timeout overrides the API's default timeout for one call.
func Timeout(timeout time.Duration) CallOption {
	return func(c *callConfig) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func (a *API) callConfig(opts []CallOption) callConfig {
	cfg := callConfig{timeout: a.timeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
