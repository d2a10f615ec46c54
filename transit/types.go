// Package transit types and sentinel errors for network construction
// and routing.
package transit

import (
	"errors"

	"github.com/trajeto/trajeto/core"
)

// Sentinel errors for transit networks.
var (
	// ErrNoStations indicates a network without a single station.
	ErrNoStations = errors.New("transit: network needs at least one station")

	// ErrEmptyStationName indicates a station with an empty name.
	ErrEmptyStationName = errors.New("transit: station name is empty")

	// ErrDuplicateStation indicates the same station name twice.
	ErrDuplicateStation = errors.New("transit: duplicate station name")

	// ErrUnknownStation indicates a name not present in the network.
	ErrUnknownStation = errors.New("transit: unknown station")

	// ErrNoRoute indicates the destination cannot be reached from the
	// origin. It is the ordinary "no path" outcome, not a failure.
	ErrNoRoute = errors.New("transit: no route between stations")
)

// Network is an immutable-after-construction transit map: named
// stations over a directed, weighted core.Graph.
type Network struct {
	graph *core.Graph
	names []string
	index map[string]int
}

// Route is a computed itinerary: the station names in travel order and
// the summed minutes of its legs.
type Route struct {
	Stations []string
	Minutes  int64
}
