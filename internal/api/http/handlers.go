package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vfsemu/vfsemu/internal/domain/session"
	"github.com/vfsemu/vfsemu/internal/infrastructure/logging"
	"github.com/vfsemu/vfsemu/internal/infrastructure/monitoring"
	"github.com/vfsemu/vfsemu/internal/vfs"
)

// Handlers exposes the core operations over HTTP. All navigation state
// lives in sessions; the tree itself is read-only for the process
// lifetime.
type Handlers struct {
	sessions *session.Manager
	source   string
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewHandlers creates the HTTP handler set.
func NewHandlers(sessions *session.Manager, source string, logger *logging.Logger, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		sessions: sessions,
		source:   source,
		logger:   logger,
		metrics:  metrics,
	}
}

// Register mounts all routes on the router.
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.GET("/vfs/info", h.Info)

	r.POST("/sessions", h.CreateSession)
	r.GET("/sessions", h.ListSessions)
	r.DELETE("/sessions/:id", h.DeleteSession)

	r.GET("/sessions/:id/pwd", h.Pwd)
	r.POST("/sessions/:id/cd", h.ChangeDir)
	r.GET("/sessions/:id/ls", h.List)
	r.GET("/sessions/:id/cat", h.ReadFile)
	r.GET("/sessions/:id/describe", h.Describe)
	r.GET("/sessions/:id/stat", h.Stat)
	r.GET("/sessions/:id/find", h.Find)
}

// Health reports liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": h.sessions.Count(),
	})
}

// Info reports tree-wide statistics.
func (h *Handlers) Info(c *gin.Context) {
	stats := vfs.Describe(h.sessions.Tree().Root())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"source":  h.source,
		"dirs":    stats.Dirs,
		"files":   stats.Files,
	})
}

// CreateSession opens a new navigation session at the root.
func (h *Handlers) CreateSession(c *gin.Context) {
	s := h.sessions.Create()
	h.logger.Info("session created", zap.String("session_id", s.ID))
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"session": gin.H{"id": s.ID, "cwd": s.Nav.Pwd()},
	})
}

// ListSessions lists live sessions.
func (h *Handlers) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"sessions": h.sessions.List(),
	})
}

// DeleteSession destroys a session.
func (h *Handlers) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if !h.sessions.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "no such session",
		})
		return
	}
	h.logger.Info("session deleted", zap.String("session_id", id))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Pwd returns the session's current directory.
func (h *Handlers) Pwd(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cwd": s.Nav.Pwd()})
}

// ChangeDir moves the session cursor.
func (h *Handlers) ChangeDir(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request: " + err.Error(),
		})
		return
	}
	err := s.Nav.ChangeDir(req.Path)
	h.record("cd", err)
	if err != nil {
		h.navError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cwd": s.Nav.Pwd()})
}

// List returns directory entries, cursor-relative when path is omitted.
func (h *Handlers) List(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	names, err := s.Nav.List(c.Query("path"))
	h.record("ls", err)
	if err != nil {
		h.navError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"entries": names,
		"count":   len(names),
	})
}

// ReadFile returns the decoded payload as the raw response body.
func (h *Handlers) ReadFile(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	data, err := s.Nav.ReadFile(c.Query("path"))
	h.record("cat", err)
	if err != nil {
		h.navError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// Describe returns file and directory counts for a subtree.
func (h *Handlers) Describe(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	stats, err := s.Nav.Describe(c.Query("path"))
	h.record("describe", err)
	if err != nil {
		h.navError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"dirs":    stats.Dirs,
		"files":   stats.Files,
	})
}

// Stat returns details for one entry.
func (h *Handlers) Stat(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	info, err := s.Nav.Stat(c.Query("path"))
	h.record("stat", err)
	if err != nil {
		h.navError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "info": info})
}

// Find returns canonical paths matching a glob pattern.
func (h *Handlers) Find(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	pattern := c.Query("pattern")
	if pattern == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "pattern parameter required",
		})
		return
	}
	matches, err := s.Nav.Glob(c.Query("path"), pattern)
	h.record("find", err)
	if err != nil {
		h.navError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
		"count":   len(matches),
	})
}

// session resolves the :id parameter, replying 404 when unknown.
func (h *Handlers) session(c *gin.Context) (*session.Session, bool) {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "no such session",
		})
	}
	return s, ok
}

// navError maps core failures to HTTP statuses: resolution failures are
// 404, kind mismatches and bad input are 400, decode failures are 422.
// Navigation errors never become 500s.
func (h *Handlers) navError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, vfs.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, vfs.ErrDecode):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func (h *Handlers) record(op string, err error) {
	if h.metrics != nil {
		h.metrics.RecordOp(op, err)
	}
}
