package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"globe-weather/models"
	"globe-weather/widget"

	"github.com/gorilla/mux"
)

// Server exposes the widget controller over HTTP
type Server struct {
	controller *widget.Controller
	server     *http.Server
	logger     *slog.Logger
}

// StateResponse is the JSON form of the widget state
type StateResponse struct {
	InputText   string             `json:"inputText"`
	Suggestions []models.CityEntry `json:"suggestions"`
	Weather     *WeatherResponse   `json:"weather,omitempty"`
}

// WeatherResponse carries both the raw provider result and its display values
type WeatherResponse struct {
	Result models.WeatherResult `json:"result"`
	View   widget.WeatherView   `json:"view"`
}

// ErrorResponse is returned for failed operations
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type inputRequest struct {
	Text string `json:"text"`
}

// NewServer creates a new API server
func NewServer(controller *widget.Controller, port string, logger *slog.Logger) *Server {
	s := &Server{
		controller: controller,
		logger:     logger,
	}
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Router builds the route table
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/suggestions", s.handleSuggestions).Methods(http.MethodGet)
	api.HandleFunc("/input", s.handleInput).Methods(http.MethodPost)
	api.HandleFunc("/submit", s.handleSubmit).Methods(http.MethodPost)
	api.HandleFunc("/select", s.handleSelect).Methods(http.MethodPost)
	api.HandleFunc("/weather", s.handleGetWeather).Methods(http.MethodGet)
	api.HandleFunc("/state", s.handleGetState).Methods(http.MethodGet)
	api.HandleFunc("/health", s.handleHealthCheck).Methods(http.MethodGet)

	router.Use(loggingMiddleware(s.logger))
	return router
}

// Start begins the API server
func (s *Server) Start() error {
	s.logger.Info("starting API server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleSuggestions updates the input text from ?q= and returns matching cities
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	suggestions := s.controller.OnInputChange(query)

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"input":       query,
		"suggestions": suggestions,
	})
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}

	s.controller.OnInputChange(req.Text)
	sendJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	result, err := s.controller.Submit(r.Context())
	if err != nil {
		s.sendOperationError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, newWeatherResponse(result))
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var city models.CityEntry
	if err := json.NewDecoder(r.Body).Decode(&city); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	if city.Name == "" || city.CountryCode == "" {
		sendError(w, http.StatusBadRequest, "name and countryCode are required", "")
		return
	}

	result, err := s.controller.SelectSuggestion(r.Context(), city)
	if err != nil {
		s.sendOperationError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, newWeatherResponse(result))
}

func (s *Server) handleGetWeather(w http.ResponseWriter, r *http.Request) {
	result, ok := s.controller.LastResult()
	if !ok {
		sendError(w, http.StatusNotFound, "no weather loaded yet", "")
		return
	}
	sendJSON(w, http.StatusOK, newWeatherResponse(result))
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, s.stateResponse())
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) stateResponse() StateResponse {
	state := s.controller.State()
	response := StateResponse{
		InputText:   state.InputText,
		Suggestions: state.Suggestions,
	}
	if state.LastResult != nil {
		weather := newWeatherResponse(*state.LastResult)
		response.Weather = &weather
	}
	return response
}

// sendOperationError maps controller errors to status codes
func (s *Server) sendOperationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, widget.ErrNoCitySelected):
		sendError(w, http.StatusUnprocessableEntity, widget.UserMessage(err), "")
	case errors.Is(err, widget.ErrWeatherFetchFailed):
		sendError(w, http.StatusBadGateway, widget.UserMessage(err), err.Error())
	default:
		s.logger.Error("unexpected error", "error", err)
		sendError(w, http.StatusInternalServerError, "internal error", "")
	}
}

func newWeatherResponse(result models.WeatherResult) WeatherResponse {
	return WeatherResponse{Result: result, View: widget.NewWeatherView(result)}
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, errorMsg, details string) {
	sendJSON(w, status, ErrorResponse{Error: errorMsg, Message: details})
}
