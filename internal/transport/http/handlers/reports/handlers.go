package reportshandler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ams/internal/domain/appraisal"
	"ams/internal/domain/auth"
	"ams/internal/domain/directory"
	"ams/internal/domain/reports"
	"ams/internal/transport/http/api"
	"ams/internal/transport/http/middleware"
)

type Handler struct {
	Appraisals *appraisal.Store
	Users      *directory.Store
}

func NewHandler(appraisals *appraisal.Store, users *directory.Store) *Handler {
	return &Handler{Appraisals: appraisals, Users: users}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/reports/summary", h.handleSummary)
	r.With(middleware.RequirePermission(auth.PermAppraisalsRead)).Get("/appraisals/{appraisalID}/letter", h.handleLetter)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	api.Success(w, reports.BuildSummary(h.Appraisals.List()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLetter(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Appraisals.Get(chi.URLParam(r, "appraisalID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "appraisal_not_found", "appraisal not found", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.CanView(user.UserID, user.Role, record) {
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", middleware.GetRequestID(r.Context()))
		return
	}

	employee, err := h.Users.Get(record.EmployeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "user_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}

	letter, err := reports.AppraisalLetter(record, employee)
	if errors.Is(err, reports.ErrNotFinalized) {
		api.Fail(w, http.StatusConflict, "not_finalized", "appraisal is not finalized", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "letter_failed", "failed to render letter", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=appraisal-%s-%d.pdf", record.Month, record.Year))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(letter)
}
