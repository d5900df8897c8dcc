package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/athlosfit/athlos/internal/analytics/period"
	"github.com/athlosfit/athlos/internal/analytics/report"
	"github.com/athlosfit/athlos/internal/auth"
	"github.com/athlosfit/athlos/internal/telemetry/tracing"
	"github.com/athlosfit/athlos/pkg"

	log "github.com/sirupsen/logrus"
)

type reporter interface {
	Report(ctx context.Context, q Query) (report.Report, error)
}

type Handler struct {
	engine reporter
}

func NewHandler(engine reporter) *Handler {
	return &Handler{
		engine: engine,
	}
}

// HandleAdmin serves GET /relatorios/admin for platform admins.
func (handler *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	handler.handleReport(w, r, auth.RolePlatformAdmin, "handler.relatorios.admin")
}

// HandleGym serves GET /relatorios/academia for gym admins.
func (handler *Handler) HandleGym(w http.ResponseWriter, r *http.Request) {
	handler.handleReport(w, r, auth.RoleGymAdmin, "handler.relatorios.academia")
}

// HandleTrainer serves GET /relatorios/personal for trainers.
func (handler *Handler) HandleTrainer(w http.ResponseWriter, r *http.Request) {
	handler.handleReport(w, r, auth.RoleTrainer, "handler.relatorios.personal")
}

// HandleStudent serves GET /relatorios/aluno for students, and for
// trainers, gym admins and platform admins drilling into one student
// via the aluno_id query param.
func (handler *Handler) HandleStudent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.relatorios.aluno")
	defer span.End()

	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	q := Query{
		Caller:    caller,
		Periodo:   r.URL.Query().Get("periodo"),
		StudentID: r.URL.Query().Get("aluno_id"),
	}
	if caller.Role == auth.RoleStudent {
		q.StudentID = caller.StudentID
	} else if q.StudentID == "" {
		http.Error(w, "error, aluno_id empty", http.StatusBadRequest)
		return
	}

	handler.respond(ctx, w, q)
}

func (handler *Handler) handleReport(w http.ResponseWriter, r *http.Request, role auth.CallerRole, spanName string) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if caller.Role != role && caller.Role != auth.RolePlatformAdmin {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	handler.respond(ctx, w, Query{
		Caller:  caller,
		Periodo: r.URL.Query().Get("periodo"),
	})
}

func (handler *Handler) respond(ctx context.Context, w http.ResponseWriter, q Query) {
	rep, err := handler.engine.Report(ctx, q)
	if err != nil {
		switch {
		case errors.Is(err, period.ErrInvalidPeriod):
			http.Error(w, "error, invalid periodo", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidScope):
			http.Error(w, "forbidden", http.StatusForbidden)
		case errors.Is(err, ErrDataUnavailable):
			log.Errorf("report for %s [periodo %q]: %s", q.Caller.ID, q.Periodo, err)
			http.Error(w, "error, report data unavailable", http.StatusServiceUnavailable)
		default:
			log.Errorf("report for %s [periodo %q]: %s", q.Caller.ID, q.Periodo, err)
			http.Error(w, "error, failed to build report", http.StatusInternalServerError)
		}
		return
	}

	repJson, err := json.Marshal(rep)
	if err != nil {
		log.Errorf("failed to marshal report: %s", err)
		http.Error(w, "error, failed to build report", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, repJson, http.StatusOK)
}
