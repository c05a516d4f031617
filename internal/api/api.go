// Package api serves the customer-facing chat, order and analytics
// endpoints.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/ziadkadry99/support-bot/internal/analytics"
	"github.com/ziadkadry99/support-bot/internal/chatlog"
	"github.com/ziadkadry99/support-bot/internal/intent"
	"github.com/ziadkadry99/support-bot/internal/orders"
)

// maxBodyBytes caps chat request bodies.
const maxBodyBytes = 64 << 10

// Classifier answers a message received on a channel.
type Classifier interface {
	Classify(ctx context.Context, ch chatlog.Channel, message string) intent.Response
}

// Handler holds the dependencies of the API routes.
type Handler struct {
	classifier Classifier
	orders     *orders.Table
	stats      analytics.StatsSource
	logger     zerolog.Logger
}

// NewHandler creates a Handler. stats may be nil when the event log is off.
func NewHandler(classifier Classifier, table *orders.Table, stats analytics.StatsSource, logger zerolog.Logger) *Handler {
	if table == nil {
		table = orders.NewTable(nil)
	}
	return &Handler{classifier: classifier, orders: table, stats: stats, logger: logger}
}

// RegisterRoutes mounts the API endpoints on the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.handleHome)
	r.Get("/health", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/test", h.handleTest)
		r.Get("/chat", h.handleChatHint)
		r.Post("/chat", h.handleChat)
		r.Get("/order/{orderNumber}", h.handleOrder)
		r.Get("/analytics", h.handleAnalytics)
	})
	r.Get("/ws/chat", h.handleWebSocket)
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Customer Support Bot API is running!",
		"status":  "active",
		"endpoints": map[string]string{
			"test":      "/api/test (GET)",
			"chat":      "/api/chat (POST)",
			"analytics": "/api/analytics (GET)",
			"order":     "/api/order/<order_number> (GET)",
			"websocket": "/ws/chat (WebSocket)",
		},
		"example_usage": map[string]string{
			"chat":       `POST /api/chat with {"message": "your question"}`,
			"test_order": "GET /api/order/ORD-12345",
		},
	})
}

func (h *Handler) handleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "success",
		"message":   "Backend API is working correctly!",
		"timestamp": time.Now().UTC().Format(time.DateTime),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "customer-support-bot",
	})
}

func (h *Handler) handleChatHint(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Use POST method to send chat messages",
		"example": `POST /api/chat with {"message": "Hello"}`,
	})
}

// chatRequest is the body of POST /api/chat and of websocket frames.
type chatRequest struct {
	Message string `json:"message"`
}

// decodeChat parses a chat payload. ok is false when the payload is not a
// JSON object with an optional string message.
func decodeChat(data []byte) (msg string, ok bool) {
	var req *chatRequest
	if err := json.Unmarshal(data, &req); err != nil || req == nil {
		return "", false
	}
	return req.Message, true
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req *chatRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil || req == nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("unusable chat payload")
		writeJSON(w, http.StatusOK, intent.ErrorResponse())
		return
	}

	resp := h.classifier.Classify(r.Context(), chatlog.ChannelHTTP, req.Message)
	hlog.FromRequest(r).Debug().
		Str("intent", string(resp.Intent)).
		Int("confidence", resp.Confidence).
		Msg("classified message")
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleOrder(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "orderNumber")

	rec, err := h.orders.Lookup(number)
	if err != nil {
		if !errors.Is(err, orders.ErrNotFound) {
			hlog.FromRequest(r).Error().Err(err).Msg("order lookup")
		}
		writeJSON(w, http.StatusNotFound, map[string]any{
			"found":   false,
			"message": notFoundHint(h.orders.Keys()),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"found":        true,
		"order_number": number,
		"details":      rec,
	})
}

// notFoundHint suggests up to three known order keys.
func notFoundHint(keys []string) string {
	if len(keys) > 3 {
		keys = keys[:3]
	}
	switch len(keys) {
	case 0:
		return "Order not found."
	case 1:
		return "Order not found. Try " + keys[0]
	case 2:
		return "Order not found. Try " + keys[0] + " or " + keys[1]
	default:
		return "Order not found. Try " + strings.Join(keys[:len(keys)-1], ", ") + ", or " + keys[len(keys)-1]
	}
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := analytics.Build(r.Context(), h.stats)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("live analytics unavailable")
	}
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
