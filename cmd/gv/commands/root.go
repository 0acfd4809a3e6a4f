package commands

import (
	"fmt"
	"os"

	"graphvault/pkg/app"
	"graphvault/pkg/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// 全局应用实例，供子命令使用
	GV *app.App
)

var rootCmd = &cobra.Command{
	Use:   "gv",
	Short: "GraphVault: content-addressed graph snapshots",
	Long:  `GraphVault persists directed graphs as content-addressed objects and exposes named, mutable snapshot pointers over the immutable object space.`,
	// PersistentPreRunE 在所有子命令执行前统一组装 App
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		GV, err = app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize graphvault: %w", err)
		}
		return nil
	},
}

// Execute 是入口
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gvault/config.yaml)")

	// flag 绑定到 Viper key，用户既可以写 yaml 也可以用命令行覆盖
	rootCmd.PersistentFlags().String("store", "", "base directory of the object store")
	rootCmd.PersistentFlags().String("name", "", "snapshot name to operate on")
	if err := viper.BindPFlag("storage.path", rootCmd.PersistentFlags().Lookup("store")); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to bind flag:", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("graph.name", rootCmd.PersistentFlags().Lookup("name")); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to bind flag:", err)
		os.Exit(1)
	}
}

func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}
}
