package web

import (
	"context"
	"fmt"
	"github.com/Monte-10/ryanair-labs/web/model"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"io"
	"strconv"
)

// ExportItinerariesImage renders airports as nodes and every leg of every
// itinerary as an edge labelled with its times.
func ExportItinerariesImage(ctx context.Context, w io.Writer, its []model.Itinerary) error {
	g, err := graphviz.New(ctx)
	if err != nil {
		return err
	}

	defer g.Close()

	graph, err := g.Graph()
	if err != nil {
		return err
	}

	if err = buildGraph(its, graph); err != nil {
		return err
	}

	return g.Render(ctx, graph, graphviz.PNG, w)
}

func buildGraph(its []model.Itinerary, graph *cgraph.Graph) error {
	lookup := make(map[string]*cgraph.Node)
	node := func(airport string) (*cgraph.Node, error) {
		if n, ok := lookup[airport]; ok {
			return n, nil
		}

		n, err := graph.CreateNodeByName(airport)
		if err != nil {
			return nil, err
		}

		n.SetLabel(airport)
		lookup[airport] = n

		return n, nil
	}

	for _, it := range its {
		for i, leg := range it.Legs {
			from, err := node(leg.DepartureAirport)
			if err != nil {
				return err
			}

			to, err := node(leg.ArrivalAirport)
			if err != nil {
				return err
			}

			edge, err := graph.CreateEdgeByName(it.Id.String()+"/"+strconv.Itoa(i), from, to)
			if err != nil {
				return err
			}

			edge.SetLabel(fmt.Sprintf("%s\n%s", leg.DepartureDateTime, leg.ArrivalDateTime))
		}
	}

	return nil
}
