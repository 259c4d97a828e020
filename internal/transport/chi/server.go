// Package chi wires the knowledge API onto a chi router: JSON DTOs,
// sentinel-to-status error mapping, and auth/CORS middleware.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/execai/kbase/internal/domain"
	healthuc "github.com/execai/kbase/internal/usecase/health"
	personauc "github.com/execai/kbase/internal/usecase/persona"
	"github.com/execai/kbase/internal/version"
)

// maxBodyBytes caps request bodies; queries are short text.
const maxBodyBytes = 64 << 10

type errorCode string

const (
	codeBadRequest    errorCode = "bad_request"
	codeInvalidQuery  errorCode = "invalid_query"
	codeInternalError errorCode = "internal_error"
)

// Querier answers knowledge queries.
type Querier interface {
	Query(ctx context.Context, req domain.QueryRequest) (domain.QueryResponse, error)
}

// DomainLister enumerates the knowledge domains.
type DomainLister interface {
	Domains(ctx context.Context) []domain.Domain
}

// PersonaResponder serves the Strategic Catalyst persona.
type PersonaResponder interface {
	Respond(ctx context.Context, query string, conversationContext []string) (personauc.Response, error)
	Profile() personauc.Profile
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements the knowledge API HTTP handlers.
type Server struct {
	knowledge     Querier
	domains       DomainLister
	persona       PersonaResponder
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(knowledge Querier, domains DomainLister, persona PersonaResponder, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		knowledge: knowledge,
		domains:   domains,
		persona:   persona,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeInvalidQuery),
	}
	return s
}

// Routes registers all API handlers on a fresh sub-router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/health", s.HealthCheck)
	r.Get("/api/knowledge/domains", s.ListDomains)
	r.Post("/api/knowledge/query", s.QueryKnowledge)
	r.Post("/api/personas/strategic-catalyst/respond", s.PersonaRespond)
	r.Get("/api/personas/strategic-catalyst/profile", s.PersonaProfile)
	r.Get("/metrics", s.Metrics)
	return r
}

// HealthCheck handles GET /api/health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status:  string(report.Status),
		Version: version.Version,
		Checks:  checks,
	})
}

// ListDomains handles GET /api/knowledge/domains.
func (s *Server) ListDomains(w http.ResponseWriter, r *http.Request) {
	domains := s.domains.Domains(r.Context())

	items := make([]domainDTO, len(domains))
	for i, d := range domains {
		items[i] = domainDTO{
			ID:           d.ID,
			Name:         d.Name,
			Description:  d.Description,
			Icon:         d.Icon,
			Capabilities: d.Capabilities,
		}
	}

	writeJSON(w, http.StatusOK, domainListResponse{
		Domains: items,
		Total:   len(items),
	})
}

// QueryKnowledge handles POST /api/knowledge/query.
func (s *Server) QueryKnowledge(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	qr, err := domain.NewQueryRequest(req.Query, req.Domains, req.Capabilities)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.knowledge.Query(r.Context(), qr)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, queryResponseToDTO(resp))
}

// PersonaRespond handles POST /api/personas/strategic-catalyst/respond.
func (s *Server) PersonaRespond(w http.ResponseWriter, r *http.Request) {
	var req personaRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := s.persona.Respond(r.Context(), req.Query, req.Context)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]scoredItemDTO, len(resp.KnowledgeItems))
	for i, it := range resp.KnowledgeItems {
		items[i] = scoredItemToDTO(it)
	}

	writeJSON(w, http.StatusOK, personaResponse{
		Response:         resp.Content,
		Persona:          resp.Persona,
		KnowledgeItems:   items,
		StrategicInsight: resp.StrategicInsight,
		NextStep:         resp.NextStep,
		Timestamp:        resp.Timestamp.Format(time.RFC3339),
	})
}

// PersonaProfile handles GET /api/personas/strategic-catalyst/profile.
func (s *Server) PersonaProfile(w http.ResponseWriter, r *http.Request) {
	p := s.persona.Profile()

	functions := make([]coreFunctionDTO, len(p.CoreFunctions))
	for i, f := range p.CoreFunctions {
		functions[i] = coreFunctionDTO{Title: f.Title, Description: f.Description}
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Name:          p.Name,
		Role:          p.Role,
		Focus:         p.Focus,
		Description:   p.Description,
		CoreFunctions: functions,
		Behavior: behaviorDTO{
			Tone:     p.Behavior.Tone,
			Style:    p.Behavior.Style,
			Bias:     p.Behavior.Bias,
			Delivery: p.Behavior.Delivery,
		},
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrDegenerateCorpus,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
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
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
