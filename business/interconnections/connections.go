package interconnections

import (
	"slices"
	"sort"
)

// connect pairs every first leg with every second leg departing strictly
// later than MinConnectionTime after its arrival.
func connect(first, second []FlightLeg) []Itinerary {
	if len(first) == 0 || len(second) == 0 {
		return nil
	}

	sorted := slices.Clone(second)
	slices.SortStableFunc(sorted, func(a, b FlightLeg) int {
		return a.DepartureDateTime.Compare(b.DepartureDateTime)
	})

	var result []Itinerary
	for _, leg1 := range first {
		earliest := leg1.ArrivalDateTime.Add(MinConnectionTime)
		idx := sort.Search(len(sorted), func(i int) bool {
			return sorted[i].DepartureDateTime.After(earliest)
		})

		for _, leg2 := range sorted[idx:] {
			result = append(result, NewConnectingItinerary(leg1, leg2))
		}
	}

	return result
}
