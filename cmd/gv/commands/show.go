package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"graphvault/pkg/export"
	"graphvault/pkg/storage"

	"github.com/spf13/cobra"
)

var showG6 bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the snapshot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := storage.LoadGraph(context.Background(), GV.BasePath, GV.GraphName)
		if err != nil {
			return fmt.Errorf("show failed: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if showG6 {
			return enc.Encode(export.ToG6(g))
		}
		return enc.Encode(export.ToJSON(g))
	},
}

func init() {
	showCmd.Flags().BoolVar(&showG6, "g6", false, "emit the AntV G6 projection instead of plain JSON")
	rootCmd.AddCommand(showCmd)
}
