package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trajeto/trajeto/transit"
)

func newTransitCommand(_ context.Context) *cobra.Command {
	var networkPath string
	var list bool

	cmd := &cobra.Command{
		Use:   "transit [from] [to]",
		Short: "Compute the minimum-time route between two stations",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			network := transit.DefaultNetwork()
			if networkPath != "" {
				loaded, err := transit.LoadFile(networkPath)
				if err != nil {
					return err
				}
				network = loaded
				log.Debugf("loaded network from %s", networkPath)
			}

			if list || len(args) < 2 {
				fmt.Println("Stations:")
				for i, name := range network.Stations() {
					legs, derr := network.Departures(name)
					if derr != nil {
						return derr
					}
					fmt.Printf("%2d. %s (%d departures)\n", i, name, legs)
				}
				if len(args) < 2 {
					return nil
				}
			}

			from, to := args[0], args[1]
			route, err := network.Route(from, to)
			if errors.Is(err, transit.ErrNoRoute) {
				// An unreachable destination is ordinary output.
				fmt.Printf("No route available from %q to %q.\n", from, to)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("Minimum travel time from %q to %q: %d minutes.\n", from, to, route.Minutes)
			fmt.Printf("Best route: %s\n", strings.Join(route.Stations, " -> "))

			return nil
		},
	}
	cmd.Flags().StringVarP(&networkPath, "network", "n", "", "YAML network file (default: built-in example)")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list stations before routing")

	return cmd
}
