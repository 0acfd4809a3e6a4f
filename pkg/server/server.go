// Package server 在存储引擎上提供 HTTP+JSON 的对外面：
// 图的 JSON/G6 投影、加点/加边的 load-modify-save 操作、以及 /metrics
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server 持有对外面需要的全部状态：base path 和快照名
// 引擎本身无状态，每次请求都显式带着 base path 调用它
type Server struct {
	basePath string
	name     string
}

func New(basePath, name string) *Server {
	return &Server{basePath: basePath, name: name}
}

// Handler 组装路由和中间件链
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /graph", s.handleShow)
	mux.HandleFunc("GET /graph/g6", s.handleShowG6)
	mux.HandleFunc("POST /vertices/{id}", s.handleAddVertex)
	mux.HandleFunc("POST /edges/{from}/{to}", s.handleAddEdge)
	mux.Handle("GET /metrics", promhttp.Handler())

	// 中间件顺序：Recovery 在最外层，panic 也要被记录和计数
	return s.recoveryMiddleware(s.loggingMiddleware(mux))
}

// ListenAndServe 启动服务并阻塞，ctx 取消时优雅关停
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", addr, "store", s.basePath, "snapshot", s.name)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
