package commands

import (
	"fmt"
	"os"

	"graphvault/pkg/core"
	"graphvault/pkg/storage"

	"github.com/spf13/cobra"
)

var objectRaw bool

var objectCmd = &cobra.Command{
	Use:   "object <kind> <hash|name>",
	Short: "Dump one stored object (debugging)",
	Long: `Read a single object from the store and print it.
For hash-addressed kinds the second argument is the 64-char hex hash;
for kind "graph" it is the snapshot name.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := core.ParseKind(args[0])
		if err != nil {
			return err
		}

		var f core.File
		if kind.NameAddressed() {
			f, err = storage.ReadNamedFile(GV.BasePath, kind, args[1])
		} else {
			var h core.Hash
			h, err = core.ParseHash(args[1])
			if err != nil {
				return err
			}
			f, err = storage.ReadFile(GV.BasePath, kind, h)
		}
		if err != nil {
			return fmt.Errorf("object read failed: %w", err)
		}

		// --raw 把原始字节直接写 stdout，可以重定向到文件
		if objectRaw {
			_, err := os.Stdout.Write(f.Content)
			return err
		}
		return printObject(f)
	},
}

// printObject 按 Kind 解码并打印人类可读的形式
func printObject(f core.File) error {
	fmt.Printf("kind: %s\nhash: %s\nsize: %d\n", f.Kind, f.Hash, len(f.Content))

	switch f.Kind {
	case core.KindVertex:
		id, err := f.Vertex()
		if err != nil {
			return err
		}
		fmt.Printf("vertex: %d\n", id)
	case core.KindEdge:
		he, err := f.HashEdge()
		if err != nil {
			return err
		}
		fmt.Printf("from: %s\nto:   %s\n", he.From, he.To)
	case core.KindVertexVec, core.KindEdgeVec:
		vec, err := f.HashVec()
		if err != nil {
			return err
		}
		for _, h := range vec {
			fmt.Println(h)
		}
	case core.KindGraph:
		gh, err := f.GraphHash()
		if err != nil {
			return err
		}
		fmt.Printf("vertexvec: %s\nedgevec:   %s\n", gh.VertexVecHash, gh.EdgeVecHash)
	}
	return nil
}

func init() {
	objectCmd.Flags().BoolVar(&objectRaw, "raw", false, "write raw object bytes to stdout")
	rootCmd.AddCommand(objectCmd)
}
