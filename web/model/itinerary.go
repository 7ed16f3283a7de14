package model

import (
	"cmp"
	"github.com/Monte-10/ryanair-labs/business/interconnections"
	"github.com/Monte-10/ryanair-labs/common/xtime"
	"slices"
	"strconv"
	"strings"
)

type FlightLeg struct {
	DepartureAirport  string              `json:"departureAirport"`
	ArrivalAirport    string              `json:"arrivalAirport"`
	DepartureDateTime xtime.LocalDateTime `json:"departureDateTime"`
	ArrivalDateTime   xtime.LocalDateTime `json:"arrivalDateTime"`
}

type Itinerary struct {
	Id    UUID        `json:"id"`
	Stops int         `json:"stops"`
	Legs  []FlightLeg `json:"legs"`
}

func ItineraryFromBusiness(it interconnections.Itinerary) Itinerary {
	legs := it.Legs()
	r := Itinerary{
		Id:    itineraryId(it),
		Stops: it.Stops(),
		Legs:  make([]FlightLeg, 0, len(legs)),
	}

	for _, leg := range legs {
		r.Legs = append(r.Legs, FlightLeg{
			DepartureAirport:  leg.DepartureAirport,
			ArrivalAirport:    leg.ArrivalAirport,
			DepartureDateTime: leg.DepartureDateTime,
			ArrivalDateTime:   leg.ArrivalDateTime,
		})
	}

	return r
}

// ItinerariesFromBusiness converts and orders by first departure, stops and
// id so repeated searches render identically.
func ItinerariesFromBusiness(its []interconnections.Itinerary) []Itinerary {
	r := make([]Itinerary, 0, len(its))
	for _, it := range its {
		r = append(r, ItineraryFromBusiness(it))
	}

	slices.SortFunc(r, func(a, b Itinerary) int {
		return cmp.Or(
			a.Legs[0].DepartureDateTime.Compare(b.Legs[0].DepartureDateTime),
			cmp.Compare(a.Stops, b.Stops),
			strings.Compare(a.Id.String(), b.Id.String()),
		)
	})

	return r
}

// itineraryId derives a stable id from the structural identity, so equal
// itineraries share an id across searches.
func itineraryId(it interconnections.Itinerary) UUID {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(it.Stops()))

	for _, leg := range it.Legs() {
		sb.WriteByte('|')
		sb.WriteString(leg.DepartureAirport)
		sb.WriteByte('-')
		sb.WriteString(leg.ArrivalAirport)
		sb.WriteByte('@')
		sb.WriteString(leg.DepartureDateTime.String())
		sb.WriteByte('/')
		sb.WriteString(leg.ArrivalDateTime.String())
	}

	return nameUUID(sb.String())
}
