// Package httpapi exposes the conversation engine over a single stateless
// JSON endpoint. The caller posts its last known state with each message and
// persists whatever comes back; the server keeps nothing between turns.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fieldquote/fieldquote/internal/engine"
	"github.com/fieldquote/fieldquote/pkg/domain"
	"github.com/fieldquote/fieldquote/pkg/ports"
)

// Dispatcher is the engine boundary the server depends on.
type Dispatcher interface {
	Dispatch(ctx context.Context, phase domain.Phase, c *domain.Context, input string, settings domain.Settings) *engine.Result
}

// Server handles the chat endpoint.
type Server struct {
	engine Dispatcher
	trades ports.TradecraftStore
	logger *slog.Logger
}

// NewHandler creates the HTTP handler for the engine. The tradecraft store
// is only consulted during legacy state migration.
func NewHandler(dispatcher Dispatcher, trades ports.TradecraftStore, logger *slog.Logger) http.Handler {
	server := &Server{
		engine: dispatcher,
		trades: trades,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Post("/chat", server.Chat)
	r.Get("/health", server.GetHealth)
	r.Handle("/metrics", promhttp.Handler())

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Chat handles one conversation turn. It always replies 200 with a chat
// payload — even a malformed body or an internal failure produces a friendly
// reset response, never a raw error, to keep chat UIs simple.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var body ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("chat: invalid request body", "err", err)
		s.writeJSON(w, resetResponse())
		return
	}

	phase, c := decodeState(r.Context(), body.State, s.trades)
	settings := toSettings(body.UserSettings)

	res := s.engine.Dispatch(r.Context(), phase, c, body.UserMessage, settings)

	resp := &ChatResponse{
		Message:      res.Message,
		QuickReplies: res.QuickReplies,
		State: &ResponseState{
			Phase:         res.Phase,
			Context:       res.Context,
			QuoteName:     res.Context.QuoteName,
			QuoteItems:    res.Context.QuoteItems,
			LaborHours:    res.Context.LaborHours,
			LaborRate:     res.Context.LaborRate,
			MarkupPercent: res.Context.MarkupPercent,
			IsComplete:    res.IsComplete,
		},
	}
	if res.Display != nil {
		resp.Display = res.Display
	}

	s.writeJSON(w, resp)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("chat response encode failed", "err", err)
	}
}

// resetResponse is the fixed reply for requests the server could not read.
func resetResponse() *ChatResponse {
	c := domain.NewContext()
	return &ChatResponse{
		Message:      "Sorry, something went wrong on my end. Let's try that again — what type of job are you quoting?",
		QuickReplies: []string{"Start a quote"},
		State: &ResponseState{
			Phase:      domain.PhaseGreeting,
			Context:    c,
			QuoteItems: c.QuoteItems,
		},
	}
}
