package interconnections

import (
	"github.com/Monte-10/ryanair-labs/ryanair"
)

type airportPair struct {
	departure string
	arrival   string
}

// FilterRoutes keeps the non-connecting routes operated by Operator.
func FilterRoutes(routes []ryanair.Route) []ryanair.Route {
	result := make([]ryanair.Route, 0, len(routes))
	for _, r := range routes {
		if r.Operator != Operator {
			continue
		}

		if r.ConnectingAirport != nil && *r.ConnectingAirport != "" {
			continue
		}

		result = append(result, r)
	}

	return result
}

type routeGraph struct {
	pairs    map[airportPair]struct{}
	outgoing map[string][]string
}

func newRouteGraph(routes []ryanair.Route) routeGraph {
	g := routeGraph{
		pairs:    make(map[airportPair]struct{}, len(routes)),
		outgoing: make(map[string][]string),
	}

	for _, r := range routes {
		p := airportPair{r.AirportFrom, r.AirportTo}
		if _, ok := g.pairs[p]; ok {
			continue
		}

		g.pairs[p] = struct{}{}
		g.outgoing[r.AirportFrom] = append(g.outgoing[r.AirportFrom], r.AirportTo)
	}

	return g
}

func (g routeGraph) has(departure, arrival string) bool {
	_, ok := g.pairs[airportPair{departure, arrival}]
	return ok
}

func (g routeGraph) destinations(departure string) []string {
	return g.outgoing[departure]
}
