package appraisalshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ams/internal/domain/appraisal"
	"ams/internal/domain/audit"
	"ams/internal/domain/auth"
	"ams/internal/domain/directory"
	"ams/internal/transport/http/api"
	"ams/internal/transport/http/middleware"
	"ams/internal/transport/http/shared"
)

// errNotPermitted marks a record-level policy refusal raised inside a store
// Update, so the handler can map it to 403 instead of 400.
var errNotPermitted = errors.New("not permitted")

type Handler struct {
	Appraisals *appraisal.Store
	Users      *directory.Store
	Audit      *audit.Service
}

func NewHandler(appraisals *appraisal.Store, users *directory.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Appraisals: appraisals, Users: users, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/appraisals", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermAppraisalsRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermAppraisalsRead)).Get("/criteria", h.handleCriteria)
		r.With(middleware.RequirePermission(auth.PermAppraisalsRead)).Get("/{appraisalID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermAppraisalsCreate)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermAppraisalsAssign)).Post("/{appraisalID}/reviewers", h.handleAssignReviewer)
		r.With(middleware.RequirePermission(auth.PermAppraisalsRate)).Post("/{appraisalID}/ratings", h.handleSubmitRating)
		r.With(middleware.RequirePermission(auth.PermAppraisalsFinalize)).Post("/{appraisalID}/finalize", h.handleFinalize)
	})
}

// handleList returns the slice of the collection the caller may see: the
// whole snapshot for Super Admin, assigned cycles for reviewer roles, own
// history for employees.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var records []appraisal.Appraisal
	switch user.Role {
	case directory.RoleSuperAdmin:
		records = h.Appraisals.List()
	case directory.RoleHR, directory.RoleManager, directory.RoleTeamLead:
		records = h.Appraisals.ListByReviewer(user.UserID)
	default:
		records = h.Appraisals.ListByEmployee(user.UserID)
	}

	if month := r.URL.Query().Get("month"); month != "" {
		filtered := records[:0:0]
		for _, record := range records {
			if record.Month == month {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}
	if records == nil {
		records = []appraisal.Appraisal{}
	}

	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCriteria(w http.ResponseWriter, r *http.Request) {
	api.Success(w, appraisal.CriteriaSchema, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
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

	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

type createRequest struct {
	EmployeeID string `json:"employeeId"`
	Month      string `json:"month"`
	Year       int    `json:"year"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.CanCreateCycle(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", middleware.GetRequestID(r.Context()))
		return
	}

	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	validator.Required("employeeId", payload.EmployeeID, "employee id is required")
	validator.Required("month", payload.Month, "month is required")
	if payload.Year == 0 {
		payload.Year = time.Now().Year()
	}
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	employee, err := h.Users.Get(payload.EmployeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "user_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if employee.Role != directory.RoleEmployee {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "appraisal cycles can only be created for employees", middleware.GetRequestID(r.Context()))
		return
	}

	record := appraisal.New(payload.EmployeeID, payload.Month, payload.Year)
	if err := h.Appraisals.Append(record); err != nil {
		api.Fail(w, http.StatusConflict, "duplicate_cycle", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	h.Audit.Record(user.UserID, "appraisal.cycle.create", "appraisal", record.ID, middleware.GetRequestID(r.Context()),
		map[string]any{"employeeId": record.EmployeeID, "month": record.Month, "year": record.Year})
	api.Created(w, record, middleware.GetRequestID(r.Context()))
}

type assignRequest struct {
	Slot   string `json:"slot"`
	UserID string `json:"userId"`
}

func (h *Handler) handleAssignReviewer(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.CanAssignReviewers(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", middleware.GetRequestID(r.Context()))
		return
	}

	var payload assignRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	slot := appraisal.Slot(payload.Slot)
	slotRole, ok := auth.SlotRole(slot)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "unknown reviewer slot", middleware.GetRequestID(r.Context()))
		return
	}

	reviewer, err := h.Users.Get(payload.UserID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "user_not_found", "reviewer not found", middleware.GetRequestID(r.Context()))
		return
	}
	if reviewer.Role != slotRole {
		api.Fail(w, http.StatusBadRequest, "slot_role_mismatch", "reviewer role does not match the slot", middleware.GetRequestID(r.Context()))
		return
	}

	updated, err := h.Appraisals.Update(chi.URLParam(r, "appraisalID"), func(record appraisal.Appraisal) (appraisal.Appraisal, error) {
		return appraisal.AssignReviewer(record, slot, payload.UserID)
	})
	if errors.Is(err, appraisal.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "appraisal_not_found", "appraisal not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "assign_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	h.Audit.Record(user.UserID, "appraisal.reviewer.assign", "appraisal", updated.ID, middleware.GetRequestID(r.Context()),
		map[string]string{"slot": payload.Slot, "reviewerId": payload.UserID})
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

type ratingRequest struct {
	Criteria appraisal.CriteriaScores `json:"criteria"`
	Comments string                   `json:"comments"`
}

func (h *Handler) handleSubmitRating(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	// The policy check runs inside Update so it sees the record as of the
	// same critical section that appends the rating.
	updated, err := h.Appraisals.Update(chi.URLParam(r, "appraisalID"), func(record appraisal.Appraisal) (appraisal.Appraisal, error) {
		if !auth.CanSubmitRating(user.UserID, user.Role, record) {
			return appraisal.Appraisal{}, errNotPermitted
		}
		return appraisal.SubmitRating(record, user.UserID, user.Role, payload.Criteria, payload.Comments, time.Now().UTC())
	})
	if err != nil {
		switch {
		case errors.Is(err, appraisal.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "appraisal_not_found", "appraisal not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, errNotPermitted):
			api.Fail(w, http.StatusForbidden, "forbidden", "not an assigned reviewer, or already rated", middleware.GetRequestID(r.Context()))
		case errors.Is(err, appraisal.ErrDuplicateRating):
			api.Fail(w, http.StatusConflict, "rating_rejected", err.Error(), middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusBadRequest, "rating_rejected", err.Error(), middleware.GetRequestID(r.Context()))
		}
		return
	}

	h.Audit.Record(user.UserID, "appraisal.rating.submit", "appraisal", updated.ID, middleware.GetRequestID(r.Context()),
		map[string]any{"evaluatorRole": user.Role, "average": updated.AverageRating})
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

type finalizeRequest struct {
	FinalMOM      string `json:"finalMOM"`
	IncrementSlab string `json:"incrementSlab"`
}

func (h *Handler) handleFinalize(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload finalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	updated, err := h.Appraisals.Update(chi.URLParam(r, "appraisalID"), func(record appraisal.Appraisal) (appraisal.Appraisal, error) {
		if !auth.CanFinalize(user.Role, record) {
			return appraisal.Appraisal{}, errNotPermitted
		}
		return appraisal.Finalize(record, payload.FinalMOM, payload.IncrementSlab)
	})
	if err != nil {
		switch {
		case errors.Is(err, appraisal.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "appraisal_not_found", "appraisal not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, errNotPermitted):
			api.Fail(w, http.StatusForbidden, "forbidden", "appraisal must be pending review to finalize", middleware.GetRequestID(r.Context()))
		case errors.Is(err, appraisal.ErrAlreadyFinalized):
			api.Fail(w, http.StatusConflict, "finalize_rejected", err.Error(), middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusBadRequest, "finalize_rejected", err.Error(), middleware.GetRequestID(r.Context()))
		}
		return
	}

	h.Audit.Record(user.UserID, "appraisal.finalize", "appraisal", updated.ID, middleware.GetRequestID(r.Context()),
		map[string]string{"incrementSlab": updated.IncrementSlab})
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}
