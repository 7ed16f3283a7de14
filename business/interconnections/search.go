package interconnections

import (
	"cmp"
	"context"
	"github.com/Monte-10/ryanair-labs/common/xtime"
	"log/slog"
	"strings"
)

type Search struct {
	routes    RoutesProvider
	schedules SchedulesProvider
	log       *slog.Logger
}

type SearchOption func(s *Search)

func WithLogger(log *slog.Logger) SearchOption {
	return func(s *Search) {
		s.log = log
	}
}

func NewSearch(routes RoutesProvider, schedules SchedulesProvider, opts ...SearchOption) *Search {
	s := &Search{
		routes:    routes,
		schedules: schedules,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log = cmp.Or(s.log, slog.Default())

	return s
}

// FindItineraries returns every direct and one-stop itinerary from departure
// to arrival departing no earlier than start and arriving no later than end.
// The order of the result is unspecified.
func (s *Search) FindItineraries(ctx context.Context, departure, arrival string, start, end xtime.LocalDateTime) ([]Itinerary, error) {
	departure = strings.TrimSpace(departure)
	arrival = strings.TrimSpace(arrival)

	if err := validate(departure, arrival, start, end); err != nil {
		return nil, err
	}

	routes, err := s.routes.Routes(ctx)
	if err != nil {
		return nil, externalService(err)
	}

	graph := newRouteGraph(FilterRoutes(routes))
	finder := newLegFinder(s.schedules, s.log, window{start, end})

	var result []Itinerary
	if graph.has(departure, arrival) {
		legs, err := finder.find(ctx, departure, arrival)
		if err != nil {
			return nil, err
		}

		for _, leg := range legs {
			result = append(result, NewDirectItinerary(leg))
		}
	}

	for _, stopover := range graph.destinations(departure) {
		if stopover == arrival || !graph.has(stopover, arrival) {
			continue
		}

		first, err := finder.find(ctx, departure, stopover)
		if err != nil {
			return nil, err
		}

		second, err := finder.find(ctx, stopover, arrival)
		if err != nil {
			return nil, err
		}

		connecting := connect(first, second)
		if len(connecting) > 0 {
			s.log.InfoContext(
				ctx,
				"stopover route detected",
				slog.String("departure", departure),
				slog.String("stopover", stopover),
				slog.String("arrival", arrival),
				slog.Int("connections", len(connecting)),
			)
		}

		result = append(result, connecting...)
	}

	return dedup(result), nil
}

func validate(departure, arrival string, start, end xtime.LocalDateTime) error {
	switch {
	case departure == "":
		return invalidArgument("departure must not be empty")

	case arrival == "":
		return invalidArgument("arrival must not be empty")

	case start.IsZero():
		return invalidArgument("departureDateTime must be present")

	case end.IsZero():
		return invalidArgument("arrivalDateTime must be present")

	case !start.Before(end):
		return invalidArgument("departureDateTime %v must be before arrivalDateTime %v", start, end)

	case departure == arrival:
		return invalidArgument("departure and arrival must differ")
	}

	return nil
}

func dedup(itineraries []Itinerary) []Itinerary {
	seen := make(map[ItineraryKey]struct{}, len(itineraries))
	result := make([]Itinerary, 0, len(itineraries))

	for _, it := range itineraries {
		if _, ok := seen[it.key]; ok {
			continue
		}

		seen[it.key] = struct{}{}
		result = append(result, it)
	}

	return result
}
