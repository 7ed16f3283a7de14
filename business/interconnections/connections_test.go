package interconnections

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestConnect_StrictMinimumConnectionTime(t *testing.T) {
	first := []FlightLeg{leg("DUB", "STN", "2025-03-10T07:00", "2025-03-10T08:00")}
	second := []FlightLeg{
		leg("STN", "WRO", "2025-03-10T10:01", "2025-03-10T12:00"),
		leg("STN", "WRO", "2025-03-10T10:00", "2025-03-10T12:00"),
		leg("STN", "WRO", "2025-03-10T09:59", "2025-03-10T12:00"),
	}

	result := connect(first, second)
	if !assert.Len(t, result, 1) {
		return
	}

	assert.Equal(t, []FlightLeg{first[0], second[0]}, result[0].Legs())
	assert.Equal(t, 1, result[0].Stops())
}

func TestConnect_MatchesCrossProduct(t *testing.T) {
	first := []FlightLeg{
		leg("DUB", "STN", "2025-03-10T06:00", "2025-03-10T07:00"),
		leg("DUB", "STN", "2025-03-10T12:00", "2025-03-10T13:00"),
		leg("DUB", "STN", "2025-03-10T09:00", "2025-03-10T10:00"),
	}
	second := []FlightLeg{
		leg("STN", "WRO", "2025-03-10T18:00", "2025-03-10T20:00"),
		leg("STN", "WRO", "2025-03-10T09:30", "2025-03-10T11:30"),
		leg("STN", "WRO", "2025-03-10T12:30", "2025-03-10T14:30"),
		leg("STN", "WRO", "2025-03-10T15:00", "2025-03-10T17:00"),
	}

	var expected []ItineraryKey
	for _, l1 := range first {
		for _, l2 := range second {
			if l2.DepartureDateTime.After(l1.ArrivalDateTime.Add(MinConnectionTime)) {
				expected = append(expected, NewConnectingItinerary(l1, l2).Key())
			}
		}
	}

	var actual []ItineraryKey
	for _, it := range connect(first, second) {
		actual = append(actual, it.Key())
	}

	assert.Len(t, actual, 8)
	assert.ElementsMatch(t, expected, actual)
}

func TestConnect_Empty(t *testing.T) {
	l := leg("DUB", "STN", "2025-03-10T06:00", "2025-03-10T07:00")

	assert.Empty(t, connect(nil, []FlightLeg{l}))
	assert.Empty(t, connect([]FlightLeg{l}, nil))
}
