package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fieldhr/hrms-backend-go/internal/domain/auth"
	"github.com/fieldhr/hrms-backend-go/internal/domain/leave"
	"github.com/fieldhr/hrms-backend-go/internal/domain/user"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.Identity(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req leave.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	result, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request filed", result)
}

func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.leaveService.Approve)
}

func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.leaveService.Reject)
}

func (h *leaveHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id, approverID string) (leave.RequestResponse, error),
) {
	approverID, _, ok := middleware.Identity(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := fn(r.Context(), chi.URLParam(r, "id"), approverID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request processed", result)
}

func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := middleware.Identity(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := leave.ListFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 50),
	}

	if role == user.RoleAdmin || role == user.RoleHR {
		if v := r.URL.Query().Get("user_id"); v != "" {
			filter.UserID = &v
		}
	} else {
		filter.UserID = &userID
	}

	if v := r.URL.Query().Get("status"); v != "" {
		status := leave.Status(v)
		filter.Status = &status
	}

	requests, total, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, requests, paginationMeta(filter.Page, filter.Limit, total))
}
