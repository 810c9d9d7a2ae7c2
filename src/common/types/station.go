package types

type Station struct {
	Code        string `json:"code" yaml:"code"`
	Designation string `json:"designation" yaml:"designation"`
}

type StationResponse struct {
	Response []Station `json:"response" yaml:"response"`
}

var stationFields = []field{
	{name: "code", alias: "NodeID", required: true},
	{name: "designation", alias: "Nome", required: true},
}

var stationResponseFields = []field{
	{name: "response", required: true},
}

func (s *Station) UnmarshalJSON(data []byte) error {
	d, err := newDecoder("station", data, stationFields)
	if err != nil {
		return err
	}

	var station Station
	d.decodeCode("code", &station.Code)
	d.decode("designation", &station.Designation)
	if d.err != nil {
		return d.err
	}

	*s = station
	return nil
}

func (r *StationResponse) UnmarshalJSON(data []byte) error {
	d, err := newDecoder("station response", data, stationResponseFields)
	if err != nil {
		return err
	}

	var response StationResponse
	d.decode("response", &response.Response)
	if d.err != nil {
		return d.err
	}

	*r = response
	return nil
}
