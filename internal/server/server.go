// Package server streams projected sky frames over WebSocket and accepts
// camera control messages from connected clients.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/logging"
	"github.com/litescript/ls-skymap/internal/projection"
	"github.com/litescript/ls-skymap/internal/render"
	"github.com/litescript/ls-skymap/internal/session"
)

// Config holds the frame server configuration.
type Config struct {
	Addr          string
	FrameInterval time.Duration

	// Width and Height set the virtual viewport frames are projected to.
	Width  int
	Height int
}

// DefaultConfig returns sensible server defaults.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8394",
		FrameInterval: 100 * time.Millisecond,
		Width:         800,
		Height:        600,
	}
}

// ControlMsg is a camera command from a client.
type ControlMsg struct {
	Cmd        string  `json:"cmd"` // rotate, zoom, look_at, reset, auto_rotate, mode
	HeadingDeg float64 `json:"heading_deg,omitempty"`
	PitchDeg   float64 `json:"pitch_deg,omitempty"`
	Factor     float64 `json:"factor,omitempty"`
	RAdeg      float64 `json:"ra_deg,omitempty"`
	DecDeg     float64 `json:"dec_deg,omitempty"`
	Name       string  `json:"name,omitempty"`
	Mode       string  `json:"mode,omitempty"`
}

// Server broadcasts frames to every connected client at a fixed interval.
type Server struct {
	cfg     Config
	sess    *session.Manager
	catalog astro.StarCatalog
	figures []astro.Constellation
	logger  *logging.Logger

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex

	upgrader websocket.Upgrader
}

// New creates a frame server around a shared session.
func New(cfg Config, sess *session.Manager, logger *logging.Logger) *Server {
	return &Server{
		cfg:     cfg,
		sess:    sess,
		catalog: astro.BrightStarCatalog(),
		figures: astro.ConstellationSet(),
		logger:  logger,
		clients: make(map[*websocket.Conn]*sync.Mutex),
		upgrader: websocket.Upgrader{
			// Local visualization endpoint; any origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	httpSrv := &http.Server{Addr: s.cfg.Addr, Handler: mux}

	go s.broadcastLoop(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("Frame server listening on %s", s.cfg.Addr)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("frame server: %w", err)
	}
	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed: %v", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = &sync.Mutex{}
	count := len(s.clients)
	s.mu.Unlock()
	s.logger.Info("Client connected (%d active)", count)

	// Send an immediate frame so the client has state before the next tick
	if data, err := s.encodeFrame(); err == nil {
		s.writeTo(conn, data)
	}

	go s.readLoop(conn)
}

// readLoop consumes control messages until the client disconnects.
func (s *Server) readLoop(conn *websocket.Conn) {
	defer s.dropClient(conn)

	for {
		var msg ControlMsg
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		s.apply(msg)
	}
}

// apply executes one control message against the session.
func (s *Server) apply(msg ControlMsg) {
	switch msg.Cmd {
	case "rotate":
		s.sess.Rotate(msg.HeadingDeg, msg.PitchDeg)
	case "zoom":
		s.sess.Zoom(msg.Factor)
	case "look_at":
		if msg.Name != "" {
			if star, ok := s.catalog.Lookup(msg.Name); ok {
				s.sess.LookAt(star.Coord, star.Name)
				return
			}
		}
		s.sess.LookAt(astro.Equatorial{RAdeg: msg.RAdeg, DecDeg: msg.DecDeg}, "")
	case "reset":
		s.sess.ResetView()
	case "auto_rotate":
		s.sess.ToggleAutoRotate()
	case "mode":
		if msg.Mode == "stereographic" {
			s.sess.SetMode(projection.ModeStereographic)
		} else {
			s.sess.SetMode(projection.ModePerspective)
		}
	default:
		s.logger.Debug("Ignoring unknown control command %q", msg.Cmd)
	}
}

// broadcastLoop steps the session and pushes a frame to every client at
// the configured interval.
func (s *Server) broadcastLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sess.Step()

			s.mu.RLock()
			idle := len(s.clients) == 0
			s.mu.RUnlock()
			if idle {
				continue
			}

			data, err := s.encodeFrame()
			if err != nil {
				s.logger.Error("Frame encode failed: %v", err)
				continue
			}
			s.broadcast(data)
		}
	}
}

// encodeFrame projects the catalog for the current session state and
// marshals it once for all clients.
func (s *Server) encodeFrame() ([]byte, error) {
	snap := s.sess.Snapshot()
	size := projection.Size{Width: float64(s.cfg.Width), Height: float64(s.cfg.Height)}

	frame := render.ExportFrame(render.Input{
		Projector:      snap.Projector(size),
		Catalog:        s.catalog,
		Constellations: s.figures,
		Options:        snap.Options,
		Observer:       snap.Observer,
		Time:           snap.Time,
		FocusName:      snap.FocusName,
	})

	data, err := json.Marshal(frame)
	if err != nil {
		return nil, fmt.Errorf("marshal frame: %w", err)
	}
	return data, nil
}

func (s *Server) broadcast(data []byte) {
	s.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.RUnlock()

	for _, conn := range conns {
		s.writeTo(conn, data)
	}
}

// writeTo sends under the connection's write lock; gorilla/websocket
// allows only one concurrent writer per connection.
func (s *Server) writeTo(conn *websocket.Conn, data []byte) {
	s.mu.RLock()
	lock, ok := s.clients[conn]
	s.mu.RUnlock()
	if !ok {
		return
	}

	lock.Lock()
	err := conn.WriteMessage(websocket.TextMessage, data)
	lock.Unlock()

	if err != nil {
		s.dropClient(conn)
	}
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.mu.Lock()
	if _, ok := s.clients[conn]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.clients, conn)
	count := len(s.clients)
	s.mu.Unlock()

	_ = conn.Close()
	s.logger.Info("Client disconnected (%d active)", count)
}
