package commands

import (
	"context"
	"fmt"
	"strconv"

	"graphvault/pkg/graph"
	"graphvault/pkg/storage"

	"github.com/spf13/cobra"
)

var addVertexCmd = &cobra.Command{
	Use:   "add-vertex <id>",
	Short: "Add a vertex and save the snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("vertex id must be a uint64: %w", err)
		}

		ctx := context.Background()
		g, err := storage.LoadGraph(ctx, GV.BasePath, GV.GraphName)
		if err != nil {
			return fmt.Errorf("add-vertex failed: %w", err)
		}

		g.AddVertex(graph.VertexID(id))

		if err := storage.SaveGraphAs(ctx, GV.BasePath, GV.GraphName, g); err != nil {
			return fmt.Errorf("add-vertex failed: %w", err)
		}
		fmt.Printf("Added vertex %d to %q\n", id, GV.GraphName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addVertexCmd)
}
