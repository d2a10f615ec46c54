package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trajeto/trajeto/bfs"
	"github.com/trajeto/trajeto/dfs"
	"github.com/trajeto/trajeto/maze"
)

// defaultMaze is the built-in example layout.
var defaultMaze = []string{
	"##########",
	"#S #   #E#",
	"#  # # # #",
	"# ## #   #",
	"#      # #",
	"###### # #",
	"#        #",
	"# ###### #",
	"#        #",
	"##########",
}

func newMazeCommand(ctx context.Context) *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "maze [file]",
		Short: "Solve a character maze ('#' walls, 'S' start, 'E' end)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if algo != "bfs" && algo != "dfs" && algo != "both" {
				return fmt.Errorf("unknown --algo %q (want bfs, dfs, or both)", algo)
			}

			lines := defaultMaze
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
			}

			m, err := maze.Parse(lines)
			if err != nil {
				return err
			}
			log.Debugf("maze: %dx%d, start %v, end %v",
				m.Rows, m.Cols, m.Coordinate(m.Start()), m.Coordinate(m.End()))

			fmt.Println("Maze:")
			fmt.Println(m.Render(nil))

			if !m.SameRegion() {
				fmt.Println("\nStart and end are in separate areas: no path can exist.")
				return nil
			}

			g := m.Graph()
			if algo == "bfs" || algo == "both" {
				res, err := bfs.BFS(g, m.Start(), m.End(), bfs.WithContext(ctx))
				if err != nil {
					return err
				}
				printMazeResult(m, "BFS (shortest)", res.Found, res.Path)
			}
			if algo == "dfs" || algo == "both" {
				res, err := dfs.DFS(g, m.Start(), m.End(), dfs.WithContext(ctx))
				if err != nil {
					return err
				}
				printMazeResult(m, "DFS (some path)", res.Found, res.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", "both", "algorithm to run: bfs, dfs, or both")

	return cmd
}

func printMazeResult(m *maze.Maze, label string, found bool, pathFn func() ([]int, error)) {
	fmt.Printf("\n--- %s ---\n", label)
	if !found {
		fmt.Println("No path found.")
		return
	}
	path, err := pathFn()
	if err != nil {
		fmt.Printf("path reconstruction failed: %v\n", err)
		return
	}
	fmt.Println(m.FormatPath(path))
	fmt.Println(m.Render(path))
}
