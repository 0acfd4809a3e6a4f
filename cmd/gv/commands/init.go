package commands

import (
	"context"
	"fmt"

	"graphvault/pkg/graph"
	"graphvault/pkg/storage"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new graph snapshot",
	Long:  `Save an empty graph under the configured snapshot name, creating the object store layout on first use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := graph.NewDirectedGraph()
		if err := storage.SaveGraphAs(context.Background(), GV.BasePath, GV.GraphName, g); err != nil {
			return fmt.Errorf("init failed: %w", err)
		}
		fmt.Printf("Initialized empty graph %q in %s\n", GV.GraphName, GV.BasePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
