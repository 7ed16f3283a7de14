package interconnections

import (
	"context"
	"fmt"
	"github.com/Monte-10/ryanair-labs/common/xtime"
	"github.com/Monte-10/ryanair-labs/ryanair"
	"log/slog"
	"time"
)

type window struct {
	start xtime.LocalDateTime
	end   xtime.LocalDateTime
}

func (w window) contains(leg FlightLeg) bool {
	return !leg.DepartureDateTime.Before(w.start) && !leg.ArrivalDateTime.After(w.end)
}

// legFinder resolves the direct legs of an airport pair inside one window.
// Results are memoized per pair for the lifetime of the finder, which is a
// single search.
type legFinder struct {
	schedules SchedulesProvider
	log       *slog.Logger
	w         window
	cache     map[airportPair][]FlightLeg
}

func newLegFinder(schedules SchedulesProvider, log *slog.Logger, w window) *legFinder {
	return &legFinder{
		schedules: schedules,
		log:       log,
		w:         w,
		cache:     make(map[airportPair][]FlightLeg),
	}
}

func (f *legFinder) find(ctx context.Context, departure, arrival string) ([]FlightLeg, error) {
	p := airportPair{departure, arrival}
	if legs, ok := f.cache[p]; ok {
		return legs, nil
	}

	year, month := f.w.start.Year(), f.w.start.Month()
	schedule, err := f.schedules.Schedule(ctx, departure, arrival, year, month)
	if err != nil {
		return nil, externalService(err)
	}

	legs := make([]FlightLeg, 0)
	for _, day := range schedule.Days {
		for _, flight := range day.Flights {
			leg, err := buildLeg(departure, arrival, year, month, day.Day, flight)
			if err != nil {
				f.log.DebugContext(
					ctx,
					"skipping schedule entry",
					slog.String("departure", departure),
					slog.String("arrival", arrival),
					slog.Int("day", day.Day),
					slog.String("err", err.Error()),
				)
				continue
			}

			if f.w.contains(leg) {
				legs = append(legs, leg)
			}
		}
	}

	f.cache[p] = legs
	return legs, nil
}

// buildLeg places a schedule entry onto the calendar. An arrival clock
// earlier than the departure clock lands on the following day of the same
// month.
func buildLeg(departure, arrival string, year int, month time.Month, day int, flight ryanair.ScheduleFlight) (FlightLeg, error) {
	depTime, err := xtime.ParseLocalTime(flight.DepartureTime)
	if err != nil {
		return FlightLeg{}, fmt.Errorf("departure time %q: %w", flight.DepartureTime, err)
	}

	arrTime, err := xtime.ParseLocalTime(flight.ArrivalTime)
	if err != nil {
		return FlightLeg{}, fmt.Errorf("arrival time %q: %w", flight.ArrivalTime, err)
	}

	depDate, err := xtime.Date(year, month, day)
	if err != nil {
		return FlightLeg{}, err
	}

	arrDay := day
	if arrTime.Before(depTime) {
		arrDay++
	}

	arrDate, err := xtime.Date(year, month, arrDay)
	if err != nil {
		return FlightLeg{}, err
	}

	return FlightLeg{
		DepartureAirport:  departure,
		ArrivalAirport:    arrival,
		DepartureDateTime: xtime.NewLocalDateTime(depDate, depTime),
		ArrivalDateTime:   xtime.NewLocalDateTime(arrDate, arrTime),
	}, nil
}
