package handlers

import (
	"net/http"
	"time"

	"energy-ecosystem/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const streamWriteTimeout = 5 * time.Second

func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowed := map[string]bool{}
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowed["*"] || allowed[origin]
		},
	}
}

// StreamSimulation handles GET /api/v1/simulate/stream.
// Parameters come from the query string. The socket receives one "hour"
// message per simulated hour, then a "summary" message, then a close frame.
func (h *SimulationHandler) StreamSimulation(c *gin.Context) {
	var req models.StreamRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	params, ok := h.resolveParams(c, req.ScenarioFile, req.ParamsConfig)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		h.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	result := h.engine.Run(params)

	for _, r := range result.Hours {
		row := models.NewHourlyRow(r)
		if err := h.send(conn, models.StreamMessage{Type: "hour", Hour: &row}); err != nil {
			h.log.Warn("stream aborted", "hour", r.Hour, "error", err)
			return
		}
	}
	summary := models.NewSummary(result)
	if err := h.send(conn, models.StreamMessage{Type: "summary", Summary: &summary}); err != nil {
		h.log.Warn("stream aborted", "error", err)
		return
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(streamWriteTimeout))
}

func (h *SimulationHandler) send(conn *websocket.Conn, msg models.StreamMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}
