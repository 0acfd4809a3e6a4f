package app

import (
	"fmt"

	"github.com/spf13/viper"
)

// App 是 CLI/HTTP 面的依赖容器
// 引擎没有全局状态，所以这里只有从配置解析出来的参数，
// 每次操作都把 BasePath 显式传给引擎
type App struct {
	// BasePath 是对象存储库的根目录
	BasePath string
	// GraphName 是默认操作的快照名
	GraphName string
	// Listen 是 HTTP 面的监听地址
	Listen string
}

// NewApp 从 Viper 配置组装容器
func NewApp() (*App, error) {
	basePath := viper.GetString("storage.path")
	if basePath == "" {
		return nil, fmt.Errorf("storage path not set")
	}
	name := viper.GetString("graph.name")
	if name == "" {
		return nil, fmt.Errorf("graph name not set")
	}

	return &App{
		BasePath:  basePath,
		GraphName: name,
		Listen:    viper.GetString("server.listen"),
	}, nil
}
