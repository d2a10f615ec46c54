// Package transit models a public-transport network of named stations
// connected by directed travel times, and answers minimum-time route
// queries with dijkstra.
//
// Stations are named once at construction; connections are directed
// and may be asymmetric (outbound and return legs often take different
// times). Weights are minutes and must be non-negative.
//
// Networks can be built in code (NewNetwork + Connect), loaded from a
// YAML file:
//
//	stations:
//	  - Centro
//	  - Rodoviaria
//	links:
//	  - { from: Centro, to: Rodoviaria, minutes: 10 }
//	  - { from: Rodoviaria, to: Centro, minutes: 12 }
//
// or taken ready-made from DefaultNetwork, the ten-station example
// this package grew out of.
//
// Route reports the cheapest station sequence and its total minutes.
// "No route exists" is a first-class outcome, returned as ErrNoRoute
// so callers can present it as ordinary output.
//
// Errors:
//
//	ErrNoStations        — construction without any station.
//	ErrEmptyStationName  — a station with an empty name.
//	ErrDuplicateStation  — the same name twice.
//	ErrUnknownStation    — a name not present in the network.
//	ErrNoRoute           — destination unreachable from origin.
package transit
