package http

import (
	"net/http"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/auth"
	"github.com/fieldhr/hrms-backend-go/internal/domain/overtime"
	"github.com/fieldhr/hrms-backend-go/internal/domain/user"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Recompute(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

// Recompute rebuilds one user/date record on demand (hr/admin).
func (h *overtimeHandlerImpl) Recompute(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		response.BadRequest(w, "user_id is required", nil)
		return
	}

	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "date must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.overtimeService.RecomputeForDay(r.Context(), userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.SuccessWithMessage(w, "No complete punch pair for the day", nil)
		return
	}

	response.SuccessWithMessage(w, "Overtime recomputed", result)
}

func (h *overtimeHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := middleware.Identity(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	target := userID
	if v := r.URL.Query().Get("user_id"); v != "" && (role == user.RoleAdmin || role == user.RoleHR) {
		target = v
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	if v := r.URL.Query().Get("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t
		}
	}

	records, err := h.overtimeService.ListByUser(r.Context(), target, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
