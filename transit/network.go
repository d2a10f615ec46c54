package transit

import (
	"errors"
	"fmt"

	"github.com/trajeto/trajeto/core"
	"github.com/trajeto/trajeto/dijkstra"
	"github.com/trajeto/trajeto/paths"
)

// NewNetwork creates a network with the given stations and no
// connections yet. Station order fixes the node indices.
func NewNetwork(stations []string) (*Network, error) {
	if len(stations) == 0 {
		return nil, ErrNoStations
	}
	index := make(map[string]int, len(stations))
	for i, name := range stations {
		if name == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyStationName, i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStation, name)
		}
		index[name] = i
	}

	g, err := core.NewGraph(len(stations), core.WithDirected(), core.WithWeighted())
	if err != nil {
		return nil, err
	}
	for i, name := range stations {
		if err := g.SetName(i, name); err != nil {
			return nil, err
		}
	}

	return &Network{
		graph: g,
		names: append([]string(nil), stations...),
		index: index,
	}, nil
}

// Stations returns the station names in index order.
func (n *Network) Stations() []string {
	return append([]string(nil), n.names...)
}

// StationIndex resolves a station name to its node index.
func (n *Network) StationIndex(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return core.NoParent, fmt.Errorf("%w: %q", ErrUnknownStation, name)
	}

	return i, nil
}

// Graph exposes the underlying graph, e.g. for running a traversal
// directly. Treat it as read-only.
func (n *Network) Graph() *core.Graph { return n.graph }

// Connect adds the directed leg from→to taking the given minutes.
// The reverse leg is a separate Connect call and may cost differently.
func (n *Network) Connect(from, to string, minutes int64) error {
	src, err := n.StationIndex(from)
	if err != nil {
		return err
	}
	dst, err := n.StationIndex(to)
	if err != nil {
		return err
	}

	return n.graph.AddEdge(src, dst, minutes)
}

// Departures reports how many outgoing legs a station has.
func (n *Network) Departures(name string) (int, error) {
	idx, err := n.StationIndex(name)
	if err != nil {
		return 0, err
	}

	return n.graph.Degree(idx)
}

// Route computes the minimum-time itinerary from one station to
// another. Identical endpoints yield a single-station route of zero
// minutes. An unreachable destination returns ErrNoRoute.
func (n *Network) Route(from, to string) (*Route, error) {
	src, err := n.StationIndex(from)
	if err != nil {
		return nil, err
	}
	dst, err := n.StationIndex(to)
	if err != nil {
		return nil, err
	}

	res, err := dijkstra.Dijkstra(n.graph, src)
	if err != nil {
		return nil, fmt.Errorf("transit: routing %q→%q: %w", from, to, err)
	}
	if !res.Reachable(dst) {
		return nil, fmt.Errorf("%w: %q→%q", ErrNoRoute, from, to)
	}

	seq, err := res.PathTo(dst)
	if err != nil {
		if errors.Is(err, paths.ErrNoPath) {
			return nil, fmt.Errorf("%w: %q→%q", ErrNoRoute, from, to)
		}
		return nil, err
	}

	stations := make([]string, len(seq))
	for i, idx := range seq {
		stations[i] = n.graph.Name(idx)
	}

	return &Route{Stations: stations, Minutes: res.Dist[dst]}, nil
}

// DefaultNetwork returns the built-in ten-station example network.
func DefaultNetwork() *Network {
	n, err := NewNetwork([]string{
		"Centro", "Rodoviaria", "Shopping", "Parque", "Hospital",
		"Aeroporto", "Praia", "Bairro Norte", "Bairro Sul", "Terminal Central",
	})
	if err != nil {
		panic(err) // static data
	}

	legs := []struct {
		from, to string
		minutes  int64
	}{
		{"Centro", "Rodoviaria", 10},
		{"Centro", "Shopping", 15},
		{"Rodoviaria", "Centro", 12},
		{"Rodoviaria", "Parque", 20},
		{"Shopping", "Hospital", 8},
		{"Parque", "Aeroporto", 25},
		{"Hospital", "Rodoviaria", 7},
		{"Hospital", "Praia", 18},
		{"Aeroporto", "Terminal Central", 30},
		{"Praia", "Terminal Central", 22},
		{"Bairro Norte", "Centro", 5},
		{"Bairro Sul", "Centro", 8},
		{"Terminal Central", "Aeroporto", 28},
		{"Terminal Central", "Praia", 20},
		{"Parque", "Bairro Sul", 10},
	}
	for _, l := range legs {
		if err := n.Connect(l.from, l.to, l.minutes); err != nil {
			panic(err)
		}
	}

	return n
}
