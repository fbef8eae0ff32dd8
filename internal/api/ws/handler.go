package ws

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vfsemu/vfsemu/internal/domain/session"
	"github.com/vfsemu/vfsemu/internal/infrastructure/logging"
	"github.com/vfsemu/vfsemu/internal/infrastructure/monitoring"
	"github.com/vfsemu/vfsemu/internal/shell"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local emulator, any origin may connect
	},
}

// Handler runs interactive shells over WebSocket connections.
type Handler struct {
	sessions *session.Manager
	info     shell.Info
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewHandler creates a WebSocket shell handler.
func NewHandler(sessions *session.Manager, info shell.Info, logger *logging.Logger, metrics *monitoring.Metrics) *Handler {
	return &Handler{
		sessions: sessions,
		info:     info,
		logger:   logger,
		metrics:  metrics,
	}
}

// response is one frame per executed command.
type response struct {
	Success bool   `json:"success"`
	Cwd     string `json:"cwd"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HandleShell upgrades the connection and executes one command per text
// frame against the session's navigation context. The connection closes
// on exit or read error; the session itself stays alive.
func (h *Handler) HandleShell(c *gin.Context) {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "no such session",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.WSConnections.Inc()
		defer h.metrics.WSConnections.Dec()
	}
	h.logger.Info("websocket shell opened", zap.String("session_id", s.ID))

	var out bytes.Buffer
	sh := shell.New(s.Nav, &out, h.info, h.logger)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			h.logger.Debug("websocket closed", zap.Error(err))
			return
		}

		out.Reset()
		execErr := sh.Execute(string(msg))
		resp := response{
			Success: execErr == nil,
			Cwd:     s.Nav.Pwd(),
			Output:  out.String(),
		}
		if execErr != nil {
			resp.Error = execErr.Error()
		}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
		if !sh.Running() {
			// An exit command ends the connection, not the session.
			return
		}
	}
}
