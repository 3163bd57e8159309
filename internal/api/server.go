// Package api serves meal plans over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bradykim7/mealplanner/internal/catalog"
	"github.com/bradykim7/mealplanner/internal/models"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

// PlanGenerator is implemented by planner.Planner
type PlanGenerator interface {
	Plan(ctx context.Context, in models.ProfileInput) (*models.MealPlanResult, error)
}

// Server holds the HTTP handlers
type Server struct {
	planner     PlanGenerator
	catalog     catalog.Source
	catalogFile string
	log         *zap.Logger
}

// NewServer creates the API server. catalogFile, when set, is exposed at /food.json.
func NewServer(planner PlanGenerator, source catalog.Source, catalogFile string, log *zap.Logger) *Server {
	return &Server{
		planner:     planner,
		catalog:     source,
		catalogFile: catalogFile,
		log:         log.Named("api"),
	}
}

// Handler builds the router wrapped in CORS and request logging
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.HandleFunc("/api/mealplan", s.createPlan).Methods(http.MethodPost)
	r.HandleFunc("/api/catalog", s.getCatalog).Methods(http.MethodGet)
	r.HandleFunc("/api/catalog/{category}", s.getCatalog).Methods(http.MethodGet)
	if s.catalogFile != "" {
		r.HandleFunc("/food.json", s.serveCatalogFile).Methods(http.MethodGet)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(s.loggingMiddleware(r))
}

// flexString accepts both JSON strings and numbers, the way form values arrive
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type planRequest struct {
	Weight        flexString `json:"weight"`
	Height        flexString `json:"height"`
	Age           flexString `json:"age"`
	Gender        flexString `json:"gender"`
	ActivityLevel flexString `json:"activityLevel"`
	Goal          flexString `json:"goal"`
}

func (p planRequest) input() models.ProfileInput {
	return models.ProfileInput{
		Weight:        string(p.Weight),
		Height:        string(p.Height),
		Age:           string(p.Age),
		Gender:        string(p.Gender),
		ActivityLevel: string(p.ActivityLevel),
		Goal:          string(p.Goal),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) createPlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	plan, err := s.planner.Plan(r.Context(), req.input())
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) getCatalog(w http.ResponseWriter, r *http.Request) {
	foods, err := s.catalog.Load(r.Context())
	if err != nil {
		s.log.Error("Failed to load catalog", zap.Error(err))
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	if name, ok := mux.Vars(r)["category"]; ok {
		category, err := models.ParseCategory(name)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		items := foods[category]
		if items == nil {
			items = []models.FoodItem{}
		}
		writeJSON(w, http.StatusOK, items)
		return
	}

	writeJSON(w, http.StatusOK, foods)
}

func (s *Server) serveCatalogFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, s.catalogFile)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps planner errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrSelectionExhausted):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrFetch), errors.Is(err, models.ErrInvalidCatalog):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		s.log.Info("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrapper.statusCode),
			zap.Duration("duration", time.Since(start)))
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// ListenAndServe runs the server until ctx is canceled
func (s *Server) ListenAndServe(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server starting", zap.String("port", port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
