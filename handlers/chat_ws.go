package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"admin-server/usecases"
	"admin-server/ws"
)

// WebSocket message envelopes
type incomingMessage struct {
	Type string `json:"type"` // chat | ping
}

type chatPayload struct {
	Type         string `json:"type"`
	TopicID      string `json:"topic_id"`
	PromptID     string `json:"prompt_id"`
	ChatEngineID string `json:"chat_engine_id"`
	Question     string `json:"question"`
}

// ChatWSHandler groups dependencies for websocket chat flows
type ChatWSHandler struct {
	mgr  *ws.Manager
	chat *usecases.ChatUseCase
	log  zerolog.Logger
}

func NewChatWSHandler(mgr *ws.Manager, chat *usecases.ChatUseCase, logger zerolog.Logger) *ChatWSHandler {
	return &ChatWSHandler{mgr: mgr, chat: chat, log: logger}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleChatWS upgrades to websocket and serves chat prompts over the
// connection. Each connection gets a server-assigned session id.
// GET /ws/chat
func (h *ChatWSHandler) HandleChatWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	sessionID := uuid.New().String()
	h.mgr.Register(sessionID, conn)
	h.log.Info().Str("session", sessionID).Msg("chat session connected")

	defer func() {
		h.mgr.Unregister(sessionID)
		h.log.Info().Str("session", sessionID).Msg("chat session disconnected")
	}()

	// Tell the client its session id before anything else.
	if err := conn.WriteJSON(gin.H{"type": "session", "session_id": sessionID}); err != nil {
		return
	}

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug().Str("session", sessionID).Msg("session closed connection")
			} else {
				h.log.Warn().Err(err).Str("session", sessionID).Msg("read error")
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		// Peek type
		var base incomingMessage
		if err := json.Unmarshal(message, &base); err != nil {
			h.writeError(conn, "invalid JSON message")
			continue
		}

		switch base.Type {
		case "chat":
			var payload chatPayload
			if err := json.Unmarshal(message, &payload); err != nil {
				h.writeError(conn, "invalid chat payload")
				continue
			}

			result, err := h.chat.Submit(usecases.ChatPromptRequest{
				TopicID:      payload.TopicID,
				PromptID:     payload.PromptID,
				ChatEngineID: payload.ChatEngineID,
				Question:     payload.Question,
			})
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}

			if err := conn.WriteJSON(gin.H{"type": "chat_response", "data": result}); err != nil {
				h.log.Warn().Err(err).Str("session", sessionID).Msg("write error")
				return
			}
		case "ping":
			if err := conn.WriteJSON(gin.H{"type": "pong"}); err != nil {
				return
			}
		default:
			h.writeError(conn, "unknown message type: "+base.Type)
		}
	}
}

func (h *ChatWSHandler) writeError(conn *websocket.Conn, message string) {
	_ = conn.WriteJSON(gin.H{"type": "error", "message": message})
}

// GetConnectedSessions GET /api/chat/sessions
func (h *ChatWSHandler) GetConnectedSessions(c *gin.Context) {
	sessions := h.mgr.Sessions()
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(sessions),
		"sessions": sessions,
	})
}
