package interconnections

import (
	"context"
	"github.com/Monte-10/ryanair-labs/common/xtime"
	"github.com/Monte-10/ryanair-labs/ryanair"
	"time"
)

const (
	Operator          = "RYANAIR"
	MinConnectionTime = 2 * time.Hour
)

type RoutesProvider interface {
	Routes(ctx context.Context) ([]ryanair.Route, error)
}

type SchedulesProvider interface {
	Schedule(ctx context.Context, departure, arrival string, year int, month time.Month) (ryanair.Schedule, error)
}

type FlightLeg struct {
	DepartureAirport  string
	ArrivalAirport    string
	DepartureDateTime xtime.LocalDateTime
	ArrivalDateTime   xtime.LocalDateTime
}

// ItineraryKey is the structural identity of an Itinerary. Two itineraries
// with equal keys are the same itinerary.
type ItineraryKey struct {
	Stops int
	Legs  [2]FlightLeg
}

type Itinerary struct {
	key ItineraryKey
}

func NewDirectItinerary(leg FlightLeg) Itinerary {
	return Itinerary{ItineraryKey{Stops: 0, Legs: [2]FlightLeg{leg}}}
}

func NewConnectingItinerary(first, second FlightLeg) Itinerary {
	return Itinerary{ItineraryKey{Stops: 1, Legs: [2]FlightLeg{first, second}}}
}

func (it Itinerary) Stops() int {
	return it.key.Stops
}

func (it Itinerary) Legs() []FlightLeg {
	legs := make([]FlightLeg, it.key.Stops+1)
	copy(legs, it.key.Legs[:])
	return legs
}

func (it Itinerary) Key() ItineraryKey {
	return it.key
}

func (it Itinerary) Departure() xtime.LocalDateTime {
	return it.key.Legs[0].DepartureDateTime
}

func (it Itinerary) Arrival() xtime.LocalDateTime {
	return it.key.Legs[it.key.Stops].ArrivalDateTime
}
