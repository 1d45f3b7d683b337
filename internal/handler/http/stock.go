package http

import (
	"encoding/json"
	"net/http"

	"github.com/fieldhr/hrms-backend-go/internal/domain/auth"
	"github.com/fieldhr/hrms-backend-go/internal/domain/stock"
	"github.com/fieldhr/hrms-backend-go/internal/domain/user"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/response"
)

type StockHandler interface {
	UpsertItem(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
	Allocate(w http.ResponseWriter, r *http.Request)
	ListAllocations(w http.ResponseWriter, r *http.Request)
	LowStock(w http.ResponseWriter, r *http.Request)
}

type stockHandlerImpl struct {
	stockService stock.StockService
}

func NewStockHandler(stockService stock.StockService) StockHandler {
	return &stockHandlerImpl{stockService: stockService}
}

func (h *stockHandlerImpl) UpsertItem(w http.ResponseWriter, r *http.Request) {
	var req stock.UpsertItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.stockService.UpsertItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock item saved", result)
}

func (h *stockHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.stockService.ListItems(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *stockHandlerImpl) Allocate(w http.ResponseWriter, r *http.Request) {
	var req stock.AllocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.stockService.Allocate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Stock allocated", result)
}

func (h *stockHandlerImpl) ListAllocations(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := middleware.Identity(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	engineerID := userID
	if v := r.URL.Query().Get("engineer_id"); v != "" && (role == user.RoleAdmin || role == user.RoleHR) {
		engineerID = v
	}

	result, err := h.stockService.ListAllocations(r.Context(), engineerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *stockHandlerImpl) LowStock(w http.ResponseWriter, r *http.Request) {
	result, err := h.stockService.LowStock(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
