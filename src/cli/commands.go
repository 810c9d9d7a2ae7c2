package main

import (
	"context"
	"io"

	"github.com/jack-barr3tt/comboios/src/common/comboios"
	"github.com/jack-barr3tt/comboios/src/common/types"
)

// Source is where the CLI reads railway data from: the relay or the upstream
// hosts directly.
type Source interface {
	SearchStations(ctx context.Context, name string) ([]types.Station, error)
	GetStationTimetable(ctx context.Context, stationID string) ([]types.Timetable, error)
	GetTrainDetails(ctx context.Context, trainID uint16) (*types.Train, error)
}

// Direct adapts the facade to Source.
type Direct struct {
	API *comboios.API
}

func (d Direct) SearchStations(ctx context.Context, name string) ([]types.Station, error) {
	return d.API.SearchStations(ctx, name)
}

func (d Direct) GetStationTimetable(ctx context.Context, stationID string) ([]types.Timetable, error) {
	return d.API.GetStationTimetable(ctx, stationID)
}

func (d Direct) GetTrainDetails(ctx context.Context, trainID uint16) (*types.Train, error) {
	return d.API.GetTrainDetails(ctx, trainID)
}

type App struct {
	Ctx    context.Context
	Source Source
	Out    io.Writer
	Format string
}

type SearchCmd struct {
	Name string `arg:"" help:"Full or partial station name."`
}

func (c *SearchCmd) Run(app *App) error {
	stations, err := app.Source.SearchStations(app.Ctx, c.Name)
	if err != nil {
		return err
	}
	return render(app.Out, app.Format, stations, func(w io.Writer) error {
		return renderStations(w, stations)
	})
}

type StationCmd struct {
	StationID string `arg:"" name:"station-id" help:"Station code, as listed by search."`
}

func (c *StationCmd) Run(app *App) error {
	timetable, err := app.Source.GetStationTimetable(app.Ctx, c.StationID)
	if err != nil {
		return err
	}
	return render(app.Out, app.Format, timetable, func(w io.Writer) error {
		return renderTimetable(w, timetable)
	})
}

type TrainCmd struct {
	TrainID string `arg:"" name:"train-id" help:"Train number, as listed by station."`
}

func (c *TrainCmd) Run(app *App) error {
	trainID, err := comboios.ParseTrainID(c.TrainID)
	if err != nil {
		return err
	}

	train, err := app.Source.GetTrainDetails(app.Ctx, trainID)
	if err != nil {
		return err
	}
	return render(app.Out, app.Format, train, func(w io.Writer) error {
		return renderTrain(w, train)
	})
}
