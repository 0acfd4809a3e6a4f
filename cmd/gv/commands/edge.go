package commands

import (
	"context"
	"fmt"
	"strconv"

	"graphvault/pkg/graph"
	"graphvault/pkg/storage"

	"github.com/spf13/cobra"
)

var addEdgeCmd = &cobra.Command{
	Use:   "add-edge <from> <to>",
	Short: "Add a directed edge and save the snapshot",
	Long:  `Add the edge from -> to. Endpoints are hashed structurally; they are not materialized as vertices unless added explicitly.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("from vertex id must be a uint64: %w", err)
		}
		to, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("to vertex id must be a uint64: %w", err)
		}

		ctx := context.Background()
		g, err := storage.LoadGraph(ctx, GV.BasePath, GV.GraphName)
		if err != nil {
			return fmt.Errorf("add-edge failed: %w", err)
		}

		g.AddEdge(graph.Edge{From: graph.VertexID(from), To: graph.VertexID(to)})

		if err := storage.SaveGraphAs(ctx, GV.BasePath, GV.GraphName, g); err != nil {
			return fmt.Errorf("add-edge failed: %w", err)
		}
		fmt.Printf("Added edge %d -> %d to %q\n", from, to, GV.GraphName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addEdgeCmd)
}
