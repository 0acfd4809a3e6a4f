package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"graphvault/pkg/export"
	"graphvault/pkg/graph"
	"graphvault/pkg/storage"
)

// handleShow 返回配置快照的 JSON 投影
func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	g, err := storage.LoadGraph(r.Context(), s.basePath, s.name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, export.ToJSON(g))
}

// handleShowG6 返回 AntV G6 期望的投影
func (s *Server) handleShowG6(w http.ResponseWriter, r *http.Request) {
	g, err := storage.LoadGraph(r.Context(), s.basePath, s.name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, export.ToG6(g))
}

// handleAddVertex 执行一次 load-modify-save：加一个顶点
func (s *Server) handleAddVertex(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "vertex id must be a uint64"})
		return
	}

	g, err := storage.LoadGraph(r.Context(), s.basePath, s.name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g.AddVertex(graph.VertexID(id))

	if err := storage.SaveGraphAs(r.Context(), s.basePath, s.name, g); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, export.ToJSON(g))
}

// handleAddEdge 执行一次 load-modify-save：加一条边
// 注意：端点不会被隐式物化为顶点
func (s *Server) handleAddEdge(w http.ResponseWriter, r *http.Request) {
	from, err := strconv.ParseUint(r.PathValue("from"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from vertex id must be a uint64"})
		return
	}
	to, err := strconv.ParseUint(r.PathValue("to"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "to vertex id must be a uint64"})
		return
	}

	g, err := storage.LoadGraph(r.Context(), s.basePath, s.name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g.AddEdge(graph.Edge{From: graph.VertexID(from), To: graph.VertexID(to)})

	if err := storage.SaveGraphAs(r.Context(), s.basePath, s.name, g); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, export.ToJSON(g))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError 把引擎的错误分类映射到 HTTP 状态码
// 缺失的对象是 404，其余 (IO、损坏的存储库) 都是服务端的 500
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, storage.ErrNotFound) {
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
