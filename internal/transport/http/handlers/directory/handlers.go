package directoryhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ams/internal/domain/appraisal"
	"ams/internal/domain/audit"
	"ams/internal/domain/auth"
	"ams/internal/domain/directory"
	"ams/internal/transport/http/api"
	"ams/internal/transport/http/middleware"
	"ams/internal/transport/http/shared"
)

type Handler struct {
	Users      *directory.Store
	Appraisals *appraisal.Store
	Audit      *audit.Service
}

func NewHandler(users *directory.Store, appraisals *appraisal.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Users: users, Appraisals: appraisals, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermUsersRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermUsersManage)).Post("/", h.handleOnboard)
		r.Get("/{userID}/appraisals", h.handleUserAppraisals)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	users := h.Users.List()
	if role := r.URL.Query().Get("role"); role != "" {
		users = h.Users.ListByRole(role)
	}
	api.Success(w, users, middleware.GetRequestID(r.Context()))
}

type onboardRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	Email       string `json:"email"`
	JoiningDate string `json:"joiningDate"`
	Password    string `json:"password"`
}

func (h *Handler) handleOnboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload onboardRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	validator.Required("department", payload.Department, "department is required")
	validator.Required("email", payload.Email, "email is required")
	validator.Enum("role", payload.Role, directory.Roles, "unknown role")
	joining := time.Now().UTC()
	if payload.JoiningDate != "" {
		parsed, ok := validator.Date("joiningDate", payload.JoiningDate)
		if ok {
			joining = parsed
		}
	}
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	role := payload.Role
	if role == "" {
		role = directory.RoleEmployee
	}

	passwordHash := ""
	if payload.Password != "" {
		hash, err := auth.HashPassword(payload.Password)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "user_create_failed", "failed to onboard user", middleware.GetRequestID(r.Context()))
			return
		}
		passwordHash = hash
	}

	user := directory.User{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		Role:        role,
		Department:  payload.Department,
		Email:       payload.Email,
		JoiningDate: joining,
	}
	if err := h.Users.Append(user, passwordHash); err != nil {
		api.Fail(w, http.StatusConflict, "user_create_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	h.Audit.Record(actor.UserID, "directory.user.onboard", "user", user.ID, middleware.GetRequestID(r.Context()), map[string]string{"role": user.Role})
	api.Created(w, user, middleware.GetRequestID(r.Context()))
}

// handleUserAppraisals serves an employee's own history in full. Directory
// readers get only the cycles the record-level policy lets them view, so a
// reviewer sees just the slots they occupy.
func (h *Handler) handleUserAppraisals(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	userID := chi.URLParam(r, "userID")
	if actor.UserID != userID && !auth.HasPermission(actor.Role, auth.PermUsersRead) {
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", middleware.GetRequestID(r.Context()))
		return
	}

	if _, err := h.Users.Get(userID); err != nil {
		api.Fail(w, http.StatusNotFound, "user_not_found", "user not found", middleware.GetRequestID(r.Context()))
		return
	}

	records := h.Appraisals.ListByEmployee(userID)
	if actor.UserID != userID {
		visible := records[:0:0]
		for _, record := range records {
			if auth.CanView(actor.UserID, actor.Role, record) {
				visible = append(visible, record)
			}
		}
		records = visible
	}
	if records == nil {
		records = []appraisal.Appraisal{}
	}

	api.Success(w, records, middleware.GetRequestID(r.Context()))
}
