package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/jack-barr3tt/comboios/src/common/types"
)

func render(w io.Writer, format string, value any, table func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	case "", "table":
		return table(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cells ...string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func renderStations(w io.Writer, stations []types.Station) error {
	if len(stations) == 0 {
		_, err := fmt.Fprintln(w, "No stations found.")
		return err
	}

	tw := newTable(w, "CODE", "STATION")
	for _, s := range stations {
		row(tw, s.Code, s.Designation)
	}
	return tw.Flush()
}

func renderTimetable(w io.Writer, timetable []types.Timetable) error {
	if len(timetable) == 0 {
		_, err := fmt.Fprintln(w, "No trains found.")
		return err
	}

	tw := newTable(w, "ORIGIN", "DESTINATION", "ARRIVAL", "DEPARTURE", "ETA", "ETD", "PLATFORM", "OCCUPANCY", "DELAY", "TRAIN")
	for _, t := range timetable {
		row(tw,
			t.Origin.Designation,
			t.Destination.Designation,
			text(t.ArrivalTime),
			text(t.DepartureTime),
			text(t.ETA),
			text(t.ETD),
			text(t.Platform),
			number(t.Occupancy),
			number(t.Delay),
			strconv.FormatUint(uint64(t.TrainNumber), 10),
		)
	}
	return tw.Flush()
}

func renderTrain(w io.Writer, train *types.Train) error {
	delay := number(train.Delay)
	if delay != "" {
		delay += " min"
	}

	fmt.Fprintf(w, "Train #%d\n", train.TrainNumber)
	fmt.Fprintf(w, "Status: %s\n", text(train.Status))
	fmt.Fprintf(w, "Delay: %s\n", delay)
	fmt.Fprintf(w, "Position: %s %s\n", text(train.Latitude), text(train.Longitude))
	fmt.Fprintf(w, "Occupancy: %s\n\n", number(train.Occupancy))

	tw := newTable(w, "STATION", "ARRIVAL", "DEPARTURE", "PLATFORM", "ETA", "ETD", "DELAY", "LATITUDE", "LONGITUDE")
	for _, s := range train.Stops {
		row(tw,
			s.Station.Designation,
			text(s.ArrivalTime),
			text(s.DepartureTime),
			text(s.Platform),
			text(s.ETA),
			text(s.ETD),
			number(s.Delay),
			s.Latitude,
			s.Longitude,
		)
	}
	return tw.Flush()
}

// Unknown values render as empty cells.
func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func number[T int8 | uint8](n *T) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(int(*n))
}
