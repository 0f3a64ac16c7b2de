package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Command is a request from outside the frame loop
type Command uint8

const (
	CommandLaunch Command = iota + 1
)

// Server routes HTTP requests to the hub, the metrics and the command queue
type Server struct {
	hub      *Hub
	metrics  *Metrics
	commands chan<- Command
	router   *mux.Router
	http     *http.Server
}

// NewServer wires the routes; commands is drained by the frame loop
func NewServer(hub *Hub, metrics *Metrics, commands chan<- Command) *Server {
	s := &Server{
		hub:      hub,
		metrics:  metrics,
		commands: commands,
		router:   mux.NewRouter(),
	}

	s.router.Use(corsMiddleware)
	s.router.HandleFunc("/flight", s.flightHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/launch", s.launchHandler).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/ws", hub.ServeWS).Methods(http.MethodGet)
	if metrics != nil {
		s.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	}
	return s
}

// Handler returns the router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds addr and serves in the background, returning the bound address
func (s *Server) Start(addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("telemetry listen %s: %w", addr, err)
	}
	s.http = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("telemetry: serve: %v", err)
		}
	}()

	log.Printf("telemetry: listening at %s", ln.Addr())
	return ln.Addr().String(), nil
}

// Shutdown stops the listener and disconnects websocket clients
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) flightHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.hub.Latest()
	if !ok {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) launchHandler(w http.ResponseWriter, r *http.Request) {
	if snap, ok := s.hub.Latest(); ok && snap.Active() {
		http.Error(w, "flight already active", http.StatusConflict)
		return
	}

	select {
	case s.commands <- CommandLaunch:
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprintln(w, "launch command accepted")
	default:
		http.Error(w, "launch command already pending", http.StatusConflict)
	}
}
