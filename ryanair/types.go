package ryanair

type Route struct {
	AirportFrom       string  `json:"airportFrom"`
	AirportTo         string  `json:"airportTo"`
	ConnectingAirport *string `json:"connectingAirport"`
	NewRoute          bool    `json:"newRoute"`
	SeasonalRoute     bool    `json:"seasonalRoute"`
	Operator          string  `json:"operator"`
	Group             string  `json:"group"`
}

// Schedule is the timetable of one airport pair for one month. A nil Days
// means the pair is not scheduled in that month.
type Schedule struct {
	Month int           `json:"month"`
	Days  []ScheduleDay `json:"days"`
}

type ScheduleDay struct {
	Day     int              `json:"day"`
	Flights []ScheduleFlight `json:"flights"`
}

type ScheduleFlight struct {
	CarrierCode   string `json:"carrierCode"`
	Number        string `json:"number"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}
