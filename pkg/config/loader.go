package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load 初始化 Viper 配置
// cfgFile: 可选，用户显式指定的配置文件路径
func Load(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		// 用户指定了文件，直接使用
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		// 搜索顺序：当前目录 -> ./.gvault -> ~/.gvault
		viper.AddConfigPath(".")
		viper.AddConfigPath(".gvault")
		viper.AddConfigPath(filepath.Join(home, ".gvault"))

		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// 环境变量：GV_STORAGE_PATH、GV_SERVER_LISTEN 等
	viper.SetEnvPrefix("GV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 配置文件是可选的：找不到就用默认值 + 环境变量 + flag
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("storage.path", ".gvault")
	viper.SetDefault("graph.name", "current")
	viper.SetDefault("server.listen", "127.0.0.1:3030")
}
