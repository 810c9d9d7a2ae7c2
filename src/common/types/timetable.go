package types

import (
	"bytes"
	"encoding/json"
)

// Timetable is one train passing the queried station.
type Timetable struct {
	Delay         *int8   `json:"delay" yaml:"delay"`
	Origin        Station `json:"train_origin" yaml:"train_origin"`
	Destination   Station `json:"train_destination" yaml:"train_destination"`
	DepartureTime *string `json:"departure_time" yaml:"departure_time"`
	ArrivalTime   *string `json:"arrival_time" yaml:"arrival_time"`
	TrainNumber   uint32  `json:"train_number" yaml:"train_number"`
	Platform      *string `json:"platform" yaml:"platform"`
	Occupancy     *uint8  `json:"occupancy" yaml:"occupancy"`
	ETA           *string `json:"eta" yaml:"eta"`
	ETD           *string `json:"etd" yaml:"etd"`
}

var timetableFields = []field{
	{name: "delay"},
	{name: "train_origin", alias: "trainOrigin", required: true},
	{name: "train_destination", alias: "trainDestination", required: true},
	{name: "departure_time", alias: "departureTime"},
	{name: "arrival_time", alias: "arrivalTime"},
	{name: "train_number", alias: "trainNumber", required: true},
	{name: "platform"},
	{name: "occupancy"},
	{name: "eta"},
	{name: "etd"},
}

func (t *Timetable) UnmarshalJSON(data []byte) error {
	d, err := newDecoder("timetable", data, timetableFields)
	if err != nil {
		return err
	}

	var entry Timetable
	d.decode("delay", &entry.Delay)
	d.decode("train_origin", &entry.Origin)
	d.decode("train_destination", &entry.Destination)
	d.decode("departure_time", &entry.DepartureTime)
	d.decode("arrival_time", &entry.ArrivalTime)
	d.decode("train_number", &entry.TrainNumber)
	d.decode("platform", &entry.Platform)
	d.decode("occupancy", &entry.Occupancy)
	d.decode("eta", &entry.ETA)
	d.decode("etd", &entry.ETD)
	if d.err != nil {
		return d.err
	}

	*t = entry
	return nil
}

// Timetables is a whole station timetable as the upstream sends it. A null
// body is an error, an empty array is not.
type Timetables []Timetable

func (t *Timetables) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return &DecodeError{Model: "timetable list", Err: ErrNullPayload}
	}

	var entries []Timetable
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	*t = entries
	return nil
}
