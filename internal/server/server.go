// Package server exposes the assistant over HTTP: the persistent websocket
// channel, the one-shot image analysis endpoint and a health check.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"github.com/sahayak-assistant/server/internal/assistant/gateway"
	"github.com/sahayak-assistant/server/internal/assistant/model"
	"github.com/sahayak-assistant/server/internal/assistant/session"
	logx "github.com/sahayak-assistant/server/pkg/logger"
)

const maxImageBytes = 10 << 20

// Server owns the router and the per-connection session wiring.
type Server struct {
	router   *chi.Mux
	cfg      model.ServerConfig
	deps     session.Deps
	vision   *gateway.Vision
	upgrader websocket.Upgrader
}

// New builds the HTTP surface. Every accepted websocket connection gets its
// own independent session; sessions only share state through the profile
// store.
func New(cfg model.ServerConfig, deps session.Deps, vision *gateway.Vision) *Server {
	origins := splitOrigins(cfg.AllowedOrigins)

	s := &Server{
		cfg:    cfg,
		deps:   deps,
		vision: vision,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(origins),
		},
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	r.Get("/ws", s.handleWebSocket)
	r.Post("/api/image", s.handleImage)
	r.Get("/healthz", s.handleHealth)

	s.router = r
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler { return s.router }

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

func originChecker(origins []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		for _, o := range origins {
			if o == "*" {
				return true
			}
			if strings.EqualFold(o, r.Header.Get("Origin")) {
				return true
			}
		}
		return false
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logx.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sess := session.New(conn, s.deps)
	sess.Run(r.Context())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleImage is the one-shot analysis endpoint: one image upload in, one
// message out. Upstream failures degrade to the localized fallback text so
// the client always receives a message.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	lang := model.ParseLanguage(r.URL.Query().Get("language"), model.DefaultLanguage)

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "expected multipart upload"})
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing image field"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable upload"})
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	message, err := s.vision.Describe(r.Context(), data, mimeType, lang)
	if err != nil {
		logx.Warn().Err(err).Msg("image analysis degraded to fallback")
		message = s.deps.Guard.FallbackReply(lang)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error().Err(err).Msg("failed to encode response")
	}
}
