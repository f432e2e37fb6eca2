package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// WebServer holds the HTTP server configuration
type WebServer struct {
	config *Config
	addr   string
	logger *slog.Logger
}

// loadFallbackConfig supplies the config when NewWebServer gets nil
var loadFallbackConfig = LoadDefaultConfig

// NewWebServer creates a new web server instance. A nil config uses the
// embedded defaults.
func NewWebServer(config *Config, addr string, logger *slog.Logger) *WebServer {
	if logger == nil {
		logger = slog.Default()
	}
	if config == nil {
		var err error
		if config, err = loadFallbackConfig(); err != nil {
			LogError(logger, "failed to load embedded default config, using built-in defaults", err)
			config = &Config{}
		}
		config.Normalize()
	}
	if addr == "" {
		addr = config.Server.Addr
	}
	return &WebServer{
		config: config,
		addr:   addr,
		logger: logger,
	}
}

// APIRanges describes the slider bounds the UI must enforce
type APIRanges struct {
	PropertiesMin     int `json:"properties_min"`
	PropertiesMax     int `json:"properties_max"`
	NightlyRateMin    int `json:"nightly_rate_min"`
	NightlyRateMax    int `json:"nightly_rate_max"`
	MarketSharePctMin int `json:"market_share_pct_min"`
	MarketSharePctMax int `json:"market_share_pct_max"`
}

// APIDefaultsResponse returns reset values, initial values and ranges
type APIDefaultsResponse struct {
	Success  bool             `json:"success"`
	Defaults CalculatorInputs `json:"defaults"`
	Initial  CalculatorInputs `json:"initial"`
	Ranges   APIRanges        `json:"ranges"`
}

// APITableResponse returns one computed table
type APITableResponse struct {
	Success bool             `json:"success"`
	Error   string           `json:"error,omitempty"`
	Inputs  CalculatorInputs `json:"inputs"`
	Table   *ARRTable        `json:"table,omitempty"`
}

// APIBreakdownResponse returns the formula steps for one cell
type APIBreakdownResponse struct {
	Success   bool             `json:"success"`
	Inputs    CalculatorInputs `json:"inputs"`
	Breakdown ARRBreakdown     `json:"breakdown"`
}

// APIErrorResponse is the body of every failed API call
type APIErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Handler returns the routed handler with middleware applied
func (ws *WebServer) Handler() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/", ws.handleIndex)
	router.HandlerFunc(http.MethodGet, "/healthz", ws.handleHealth)
	router.HandlerFunc(http.MethodGet, "/api/defaults", ws.handleDefaults)
	router.HandlerFunc(http.MethodGet, "/api/table", ws.handleTable)
	router.HandlerFunc(http.MethodGet, "/api/breakdown", ws.handleBreakdown)
	router.HandlerFunc(http.MethodGet, "/api/export/:format", ws.handleExport)

	return ws.requestLogging(securityHeaders(router))
}

// Start starts the web server and blocks until it fails
func (ws *WebServer) Start() error {
	listener, url, err := ws.listen()
	if err != nil {
		return err
	}

	ws.logger.Info("starting web server", "addr", listener.Addr().String(), "url", url)

	if ws.config.Server.OpenBrowser {
		ws.logger.Info("opening browser", "url", url)
		go openBrowser(url)
	}

	server := &http.Server{
		Handler:     ws.Handler(),
		IdleTimeout: time.Minute,
		ReadTimeout: 5 * time.Second,
		ErrorLog:    slog.NewLogLogger(ws.logger.Handler(), slog.LevelError),
	}
	return server.Serve(listener)
}

// StartForEmbedded starts the server and returns the URL and a cleanup function.
// Unlike Start(), this does NOT open the browser and does NOT block.
func (ws *WebServer) StartForEmbedded() (url string, cleanup func(), err error) {
	listener, url, err := ws.listen()
	if err != nil {
		return "", nil, err
	}

	ws.logger.Info("starting embedded web server", "addr", listener.Addr().String())

	server := &http.Server{
		Handler:  ws.Handler(),
		ErrorLog: slog.NewLogLogger(ws.logger.Handler(), slog.LevelError),
	}

	go func() {
		if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			LogError(ws.logger, "server error", err)
		}
	}()

	cleanup = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			LogError(ws.logger, "server shutdown failed", err)
		}
	}

	return url, cleanup, nil
}

// listen opens the listener (":0" assigns a port) and works out the browser URL
func (ws *WebServer) listen() (net.Listener, string, error) {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return nil, "", fmt.Errorf("listen on %s: %w", ws.addr, err)
	}

	actualAddr := listener.Addr().String()
	url := fmt.Sprintf("http://%s", actualAddr)

	// If listening on all interfaces, use localhost for the URL
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") || strings.HasPrefix(actualAddr, "[::]:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}

	return listener, url, nil
}

// handleIndex serves the main web UI
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	in, err := ParseInputs(r.URL.Query(), ws.config.InitialInputs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := renderPage(&buf, in, ComputeTable(in), true); err != nil {
		LogError(FromContext(r.Context()), "failed to render page", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "ok")
}

// handleDefaults returns the reset defaults, configured initial values and ranges
func (ws *WebServer) handleDefaults(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, APIDefaultsResponse{
		Success:  true,
		Defaults: DefaultInputs(),
		Initial:  ws.config.InitialInputs,
		Ranges: APIRanges{
			PropertiesMin:     MinPropertiesPerHost,
			PropertiesMax:     MaxPropertiesPerHost,
			NightlyRateMin:    MinNightlyRateUSD,
			NightlyRateMax:    MaxNightlyRateUSD,
			MarketSharePctMin: MinMarketSharePct,
			MarketSharePctMax: MaxMarketSharePct,
		},
	})
}

// handleTable computes the table for the query inputs
func (ws *WebServer) handleTable(w http.ResponseWriter, r *http.Request) {
	in, err := ParseInputs(r.URL.Query(), ws.config.InitialInputs)
	if err != nil {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	table := ComputeTable(in)
	sendJSON(w, http.StatusOK, APITableResponse{
		Success: true,
		Inputs:  in,
		Table:   &table,
	})
}

// handleBreakdown returns the formula steps for ?occupancy=..&direct=..
func (ws *WebServer) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	in, err := ParseInputs(query, ws.config.InitialInputs)
	if err != nil {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	occupancy, err := requiredNumber(query.Get("occupancy"), "occupancy")
	if err != nil {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	direct, err := requiredNumber(query.Get("direct"), "direct")
	if err != nil {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	sendJSON(w, http.StatusOK, APIBreakdownResponse{
		Success:   true,
		Inputs:    in,
		Breakdown: ComputeBreakdown(in, occupancy, direct),
	})
}

// handleExport returns the table as a CSV, PDF or HTML download
func (ws *WebServer) handleExport(w http.ResponseWriter, r *http.Request) {
	format := httprouter.ParamsFromContext(r.Context()).ByName("format")

	in, err := ParseInputs(r.URL.Query(), ws.config.InitialInputs)
	if err != nil {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	table := ComputeTable(in)

	contentType, ok := exportContentTypes[format]
	if !ok {
		sendJSONError(w, http.StatusNotFound, fmt.Sprintf("unknown export format %q", format))
		return
	}

	body, err := renderExport(format, in, table)
	if err != nil {
		LogError(FromContext(r.Context()), "export failed", err, slog.String("format", format))
		sendJSONError(w, http.StatusInternalServerError, "Failed to export "+format+": "+err.Error())
		return
	}

	filename := fmt.Sprintf("arr-table.%s", format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Write(body)
}

func requiredNumber(raw, field string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	return parseNumber(field, raw)
}

// sendJSON writes v as a JSON response with the given status
func sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// sendJSONError sends a JSON error response
func sendJSONError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, APIErrorResponse{Success: false, Error: message})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// requestLogging tags each request with an id, stores a request-scoped logger
// in the context and logs the outcome
func (ws *WebServer) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		logger := ws.logger.With(slog.String("request_id", requestID))
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(WithLogger(r.Context(), logger)))

		LogHTTPRequest(logger, r.Method, r.URL.Path, rec.status,
			float64(time.Since(start).Microseconds())/1000.0)
	})
}

// securityHeaders adds security headers to all HTTP responses. The page uses
// inline styles and a small inline script.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy",
			"default-src 'self'; style-src 'self' 'unsafe-inline'; script-src 'self' 'unsafe-inline'; frame-ancestors 'none';")
		next.ServeHTTP(w, r)
	})
}
