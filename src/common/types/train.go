package types

type Stopover struct {
	Station       Station `json:"station" yaml:"station"`
	DepartureTime *string `json:"departure_time" yaml:"departure_time"`
	ArrivalTime   *string `json:"arrival_time" yaml:"arrival_time"`
	Platform      *string `json:"platform" yaml:"platform"`
	Latitude      string  `json:"latitude" yaml:"latitude"`
	Longitude     string  `json:"longitude" yaml:"longitude"`
	Delay         *int8   `json:"delay" yaml:"delay"`
	ETA           *string `json:"eta" yaml:"eta"`
	ETD           *string `json:"etd" yaml:"etd"`
}

// Train is a train's live state plus its stops in route order.
type Train struct {
	TrainNumber uint32     `json:"train_number" yaml:"train_number"`
	Delay       *int8      `json:"delay" yaml:"delay"`
	Occupancy   *uint8     `json:"occupancy" yaml:"occupancy"`
	Latitude    *string    `json:"latitude" yaml:"latitude"`
	Longitude   *string    `json:"longitude" yaml:"longitude"`
	Status      *string    `json:"status" yaml:"status"`
	Stops       []Stopover `json:"stops" yaml:"stops"`
}

var stopoverFields = []field{
	{name: "station", required: true},
	{name: "departure_time", alias: "departure"},
	{name: "arrival_time", alias: "arrival"},
	{name: "platform"},
	{name: "latitude", required: true},
	{name: "longitude", required: true},
	{name: "delay"},
	{name: "eta"},
	{name: "etd"},
}

var trainFields = []field{
	{name: "train_number", alias: "trainNumber", required: true},
	{name: "delay"},
	{name: "occupancy"},
	{name: "latitude"},
	{name: "longitude"},
	{name: "status"},
	{name: "stops", alias: "trainStops", required: true},
}

func (s *Stopover) UnmarshalJSON(data []byte) error {
	d, err := newDecoder("stopover", data, stopoverFields)
	if err != nil {
		return err
	}

	var stop Stopover
	d.decode("station", &stop.Station)
	d.decode("departure_time", &stop.DepartureTime)
	d.decode("arrival_time", &stop.ArrivalTime)
	d.decode("platform", &stop.Platform)
	d.decode("latitude", &stop.Latitude)
	d.decode("longitude", &stop.Longitude)
	d.decode("delay", &stop.Delay)
	d.decode("eta", &stop.ETA)
	d.decode("etd", &stop.ETD)
	if d.err != nil {
		return d.err
	}

	*s = stop
	return nil
}

func (t *Train) UnmarshalJSON(data []byte) error {
	d, err := newDecoder("train", data, trainFields)
	if err != nil {
		return err
	}

	var train Train
	d.decode("train_number", &train.TrainNumber)
	d.decode("delay", &train.Delay)
	d.decode("occupancy", &train.Occupancy)
	d.decode("latitude", &train.Latitude)
	d.decode("longitude", &train.Longitude)
	d.decode("status", &train.Status)
	d.decode("stops", &train.Stops)
	if d.err != nil {
		return d.err
	}

	*t = train
	return nil
}
