package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"graphvault/pkg/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the snapshot over HTTP",
	Long:  `Expose the configured snapshot over HTTP: JSON and AntV-G6 projections, add-vertex/add-edge operations, and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// SIGINT/SIGTERM 触发优雅关停
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(GV.BasePath, GV.GraphName)
		err := srv.ListenAndServe(ctx, viper.GetString("server.listen"))
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	},
}

func init() {
	serveCmd.Flags().String("listen", "", "listen address (host:port)")
	_ = viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
	rootCmd.AddCommand(serveCmd)
}
