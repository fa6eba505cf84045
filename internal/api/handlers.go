package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/repository"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type planSummary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	TotalCredits int       `json:"totalCredits"`
	Score        float64   `json:"score"`
}

type planDetail struct {
	planSummary
	Request  *app.PlanRequest  `json:"request"`
	Response *app.PlanResponse `json:"response"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: code, Message: msg})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.catalog.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listing courses")
		writeError(w, http.StatusInternalServerError, string(app.PlanErrCatalogUnavailable), "failed to load courses")
		return
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Course{"courses": courses})
}

func (h *handler) generatePlan(w http.ResponseWriter, r *http.Request) {
	var req app.PlanRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, string(app.PlanErrInvalidRequest), "malformed request body: "+err.Error())
		return
	}

	resp, err := h.plans.Generate(r.Context(), req)
	if err != nil {
		code, ok := app.PlanErrorCodeOf(err)
		if !ok {
			code = app.PlanErrInternal
		}
		status := statusForPlanError(code)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("generating plan")
			msg = "internal error"
		}
		writeError(w, status, string(code), msg)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func statusForPlanError(code app.PlanErrorCode) int {
	switch code {
	case app.PlanErrInvalidRequest:
		return http.StatusBadRequest
	case app.PlanErrCatalogInvalid:
		return http.StatusUnprocessableEntity
	case app.PlanErrCatalogUnavailable, app.PlanErrSearchCanceled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) listPlans(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, string(app.PlanErrInvalidRequest), "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	plans, err := h.history.List(r.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("listing plans")
		writeError(w, http.StatusInternalServerError, string(app.PlanErrInternal), "internal error")
		return
	}
	out := make([]planSummary, 0, len(plans))
	for i := range plans {
		out = append(out, summarize(&plans[i]))
	}
	writeJSON(w, http.StatusOK, map[string][]planSummary{"plans": out})
}

func (h *handler) getPlan(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, err := h.history.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "plan "+id+" not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("plan_id", id).Msg("getting plan")
		writeError(w, http.StatusInternalServerError, string(app.PlanErrInternal), "internal error")
		return
	}

	req, resp, err := app.DecodeSavedPlan(p)
	if err != nil {
		h.log.Error().Err(err).Str("plan_id", id).Msg("decoding plan")
		writeError(w, http.StatusInternalServerError, string(app.PlanErrInternal), "internal error")
		return
	}
	writeJSON(w, http.StatusOK, planDetail{planSummary: summarize(p), Request: req, Response: resp})
}

func summarize(p *domain.SavedPlan) planSummary {
	return planSummary{ID: p.ID, CreatedAt: p.CreatedAt, TotalCredits: p.TotalCredits, Score: p.Score}
}
