package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomecraft/statscribe/internal/extract"
	"github.com/tomecraft/statscribe/internal/statblock"
)

// extractorInterface defines what the server needs from an extractor.
type extractorInterface interface {
	Extract(ctx context.Context, data []byte) (*extract.Result, error)
}

// Server holds the HTTP server state and dependencies.
type Server struct {
	extractor   extractorInterface
	corsOrigin  string
	maxUploadMB int64
	timeoutSec  int
}

// Config holds server configuration.
type Config struct {
	Host          string
	Port          int
	CORSOrigin    string
	MaxUploadMB   int64
	TimeoutSec    int
	ExtractConfig extract.Config
}

// DefaultConfig returns server configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:        "0.0.0.0",
		Port:        8080,
		CORSOrigin:  "*",
		MaxUploadMB: 50,
		TimeoutSec:  120,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// ScanResponse is the body of POST /scan.
type ScanResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message,omitempty"`
	Monster  *statblock.Record `json:"monster,omitempty"`
	RawText  string            `json:"raw_text,omitempty"`
	Strategy string            `json:"strategy,omitempty"`
	Complete bool              `json:"complete"`
}

// NewServer creates a statblock scanning server instance.
func NewServer(config Config) (*Server, error) {
	ex, err := extract.NewBuilder().WithConfig(config.ExtractConfig).Build()
	if err != nil {
		return nil, err
	}

	return &Server{
		extractor:   ex,
		corsOrigin:  config.CORSOrigin,
		maxUploadMB: config.MaxUploadMB,
		timeoutSec:  config.TimeoutSec,
	}, nil
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/scan", s.corsMiddleware(s.scanHandler))
	mux.Handle("/metrics", promhttp.Handler())
}
