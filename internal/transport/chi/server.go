package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/formvault/formvault/internal/domain"
	formuc "github.com/formvault/formvault/internal/usecase/form"
	healthuc "github.com/formvault/formvault/internal/usecase/health"
)

// Error codes carried in problem payloads.
const (
	CodeIDExists      = "idexists"
	CodeIDNull        = "idnull"
	CodeBadRequest    = "badrequest"
	CodeInvalid       = "invalid"
	CodeNotFound      = "notfound"
	CodeUnauthorized  = "unauthorized"
	CodeInternalError = "internalerror"
)

// ErrorResponse is the structured problem payload for 4xx responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Entity  string `json:"entity,omitempty"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the insurance-form CRUD and search API.
type Server struct {
	forms         *formuc.Service
	health        *healthuc.Service
	appName       string
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. appName feeds the entity-change
// alert headers on write responses.
func NewServer(forms *formuc.Service, health *healthuc.Service, appName string, logger *zap.Logger) *Server {
	s := &Server{
		forms:   forms,
		health:  health,
		appName: appName,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		notFoundHandler,
		sentinelHandler(domain.ErrIDExists, http.StatusBadRequest, CodeIDExists),
		sentinelHandler(domain.ErrIDMissing, http.StatusBadRequest, CodeIDNull),
		sentinelHandler(domain.ErrInvalidForm, http.StatusBadRequest, CodeInvalid),
	}
	return s
}

// Routes registers all endpoint routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/insurance-forms", s.CreateForm)
		r.Put("/insurance-forms", s.UpdateForm)
		r.Get("/insurance-forms", s.ListForms)
		r.Get("/insurance-forms/{id}", s.GetForm)
		r.Delete("/insurance-forms/{id}", s.DeleteForm)
		r.Get("/_search/insurance-forms", s.SearchForms)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateForm handles POST /api/insurance-forms.
func (s *Server) CreateForm(w http.ResponseWriter, r *http.Request) {
	var f domain.Form
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.logger.Debug("request to create form", zap.String("name", f.Name))

	saved, err := s.forms.Create(r.Context(), &f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/insurance-forms/%d", *saved.ID))
	setCreationAlert(w, s.appName, *saved.ID)
	writeJSON(w, http.StatusCreated, saved)
}

// UpdateForm handles PUT /api/insurance-forms.
func (s *Server) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var f domain.Form
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.logger.Debug("request to update form", zap.Any("id", f.ID))

	saved, err := s.forms.Update(r.Context(), &f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	setUpdateAlert(w, s.appName, *saved.ID)
	writeJSON(w, http.StatusOK, saved)
}

// ListForms handles GET /api/insurance-forms.
func (s *Server) ListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := s.forms.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if forms == nil {
		forms = []domain.Form{}
	}
	writeJSON(w, http.StatusOK, forms)
}

// GetForm handles GET /api/insurance-forms/{id}.
func (s *Server) GetForm(w http.ResponseWriter, r *http.Request) {
	id, ok := s.formID(w, r)
	if !ok {
		return
	}

	f, err := s.forms.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// DeleteForm handles DELETE /api/insurance-forms/{id}.
// Deleting an absent ID still returns 204.
func (s *Server) DeleteForm(w http.ResponseWriter, r *http.Request) {
	id, ok := s.formID(w, r)
	if !ok {
		return
	}

	s.logger.Debug("request to delete form", zap.Int64("id", id))

	if err := s.forms.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	setDeletionAlert(w, s.appName, id)
	w.WriteHeader(http.StatusNoContent)
}

// SearchForms handles GET /api/_search/insurance-forms?query=q.
func (s *Server) SearchForms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	forms, err := s.forms.Search(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if forms == nil {
		forms = []domain.Form{}
	}
	writeJSON(w, http.StatusOK, forms)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// formID parses the {id} path parameter, replying 400 on garbage.
func (s *Server) formID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("invalid form id %q", raw))
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
		Entity:  domain.EntityName,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrIDExists,
		domain.ErrIDMissing,
		domain.ErrInvalidForm,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// notFoundHandler maps ErrNotFound to a bare 404 with empty body.
func notFoundHandler(w http.ResponseWriter, err error, _ string) bool {
	if !errors.Is(err, domain.ErrNotFound) {
		return false
	}
	w.WriteHeader(http.StatusNotFound)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
