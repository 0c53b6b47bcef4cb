package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
	"weather-dashboard/region"
	"weather-dashboard/session"

	"github.com/gorilla/mux"
)

// SessionCookie is the cookie that carries the visitor's session ID
const SessionCookie = "weather_session"

// errInvalidInput marks request problems the caller can fix
var errInvalidInput = errors.New("invalid input")

// Locator resolves a client IP address to a position
type Locator interface {
	Locate(ctx context.Context, ip string) (models.Location, error)
}

// Settings holds the server's tunables
type Settings struct {
	Port        int
	DefaultCity string         // used when no better place is known
	Zone        *time.Location // splits forecasts into calendar days
}

// Server represents the API server
type Server struct {
	source      datasource.Source
	locator     Locator
	sessions    *session.Store
	defaultCity string
	zone        *time.Location
	handler     http.Handler
	server      *http.Server
}

// NewServer creates a new API server
func NewServer(source datasource.Source, locator Locator, sessions *session.Store, settings Settings) *Server {
	if settings.DefaultCity == "" {
		settings.DefaultCity = "Seoul"
	}
	if settings.Zone == nil {
		settings.Zone = time.Local
	}

	s := &Server{
		source:      source,
		locator:     locator,
		sessions:    sessions,
		defaultCity: settings.DefaultCity,
		zone:        settings.Zone,
	}

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", s.handleHealthCheck).Methods(http.MethodGet)

	// Region picker
	api.HandleFunc("/regions", s.handleProvinces).Methods(http.MethodGet)
	api.HandleFunc("/regions/{province}", s.handleCities).Methods(http.MethodGet)
	api.HandleFunc("/regions/{province}/{city}", s.handleCity).Methods(http.MethodGet)
	api.HandleFunc("/cities/foreign", s.handleForeignCities).Methods(http.MethodGet)

	// Current location
	api.HandleFunc("/location", s.handleGetLocation).Methods(http.MethodGet)
	api.HandleFunc("/location", s.handleLocate).Methods(http.MethodPost)
	api.HandleFunc("/location", s.handleClearLocation).Methods(http.MethodDelete)

	// Weather
	api.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)

	s.handler = enableCORS(logRequests(router))
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", settings.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the root handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins the API server
func (s *Server) Start() error {
	log.Printf("Starting API server on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// enableCORS lets a browser front end on another origin call the API
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Preflight requests never reach the router
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s -> %d (%s)", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Millisecond))
	})
}

// sessionID returns the caller's session ID, issuing a new cookie if needed
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && session.ValidID(c.Value) {
		return c.Value
	}

	id := session.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// clientIP returns the public address of the caller, or "" when the request
// comes from a private network and ip-api.com should use its own view.
func clientIP(r *http.Request) string {
	var candidate string
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		candidate = strings.TrimSpace(strings.Split(fwd, ",")[0])
	} else if xr := r.Header.Get("X-Real-IP"); xr != "" {
		candidate = strings.TrimSpace(xr)
	} else if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		candidate = host
	} else {
		candidate = r.RemoteAddr
	}

	ip := net.ParseIP(candidate)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
		return ""
	}
	return ip.String()
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// errorResponse is the body of every failed request
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// writeError maps err onto a status code and writes it
func writeError(w http.ResponseWriter, err error) {
	status, kind := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, errInvalidInput):
		status, kind = http.StatusBadRequest, "bad_request"
	case models.IsNotFound(err):
		status, kind = http.StatusNotFound, "not_found"
	case models.IsNetwork(err):
		status, kind = http.StatusBadGateway, "network"
	}
	if status == http.StatusInternalServerError {
		log.Printf("Unexpected error: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"provider":  s.source.Name(),
		"sessions":  s.sessions.Count(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// cityView is a region table entry as served to the picker
type cityView struct {
	Province  string   `json:"province"`
	Name      string   `json:"name"`
	English   string   `json:"english"`
	Query     string   `json:"query"`
	Districts []string `json:"districts"`
}

func newCityView(province string, c region.City) cityView {
	return cityView{
		Province:  province,
		Name:      c.Name,
		English:   c.English,
		Query:     c.Query(),
		Districts: c.Districts,
	}
}

// handleProvinces lists the provinces in display order
func (s *Server) handleProvinces(w http.ResponseWriter, r *http.Request) {
	provinces := region.Provinces()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"provinces": provinces,
		"count":     len(provinces),
	})
}

// handleCities lists the cities of one province
func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	province := mux.Vars(r)["province"]
	cities, err := region.Cities(province)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]cityView, 0, len(cities))
	for _, c := range cities {
		views = append(views, newCityView(province, c))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"province": province,
		"cities":   views,
		"count":    len(views),
	})
}

// handleCity returns one city with its districts
func (s *Server) handleCity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c, err := region.Lookup(vars["province"], vars["city"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCityView(vars["province"], c))
}

// handleForeignCities returns the quick-pick list for foreign mode
func (s *Server) handleForeignCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"groups": region.ForeignCities(),
	})
}

// handleGetLocation returns the position stored for the caller, if any
func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	st, ok := s.sessions.Get(id)
	if !ok || st.Location == nil {
		writeError(w, &models.NotFoundError{Kind: "location", Name: "session", Reason: "no stored position"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"location": st.Location,
	})
}

// handleLocate geolocates the caller by IP and remembers the result
func (s *Server) handleLocate(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	loc, err := s.locator.Locate(r.Context(), clientIP(r))
	if err != nil {
		log.Printf("Geolocation failed: %v", err)
		writeError(w, err)
		return
	}

	s.sessions.SaveLocation(id, loc)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"location": loc,
		"query":    datasource.CoordinateQuery(loc.Latitude, loc.Longitude).String(),
	})
}

// handleClearLocation forgets the caller's stored position
func (s *Server) handleClearLocation(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	s.sessions.ClearLocation(id)
	w.WriteHeader(http.StatusNoContent)
}
