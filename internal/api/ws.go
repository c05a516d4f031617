package api

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"

	"github.com/ziadkadry99/support-bot/internal/chatlog"
	"github.com/ziadkadry99/support-bot/internal/intent"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket answers each text frame {"message": "..."} with a
// Response frame until the client disconnects.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	logger := hlog.FromRequest(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxBodyBytes)

	// The request deadline must not end a long-lived session.
	ctx := context.WithoutCancel(r.Context())

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("websocket read")
			}
			return
		}

		resp := intent.ErrorResponse()
		if msg, ok := decodeChat(data); ok {
			resp = h.classifier.Classify(ctx, chatlog.ChannelWebsocket, msg)
		}

		if err := conn.WriteJSON(resp); err != nil {
			logger.Warn().Err(err).Msg("websocket write")
			return
		}
	}
}
