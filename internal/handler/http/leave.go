package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/leave"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/middleware"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Apply implements LeaveHandler.
func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.Apply(r.Context(), middleware.IdentityFromRequest(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application filed", resp)
}

// Decide implements LeaveHandler.
func (h *leaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req leave.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.Decide(r.Context(), middleware.IdentityFromRequest(r), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application processed", resp)
}

// Get implements LeaveHandler.
func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.leaveService.Get(r.Context(), middleware.IdentityFromRequest(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListPending implements LeaveHandler.
func (h *leaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.ListPending(r.Context(), middleware.IdentityFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := leave.LeaveFilter{}
	if v := q.Get("officer_id"); v != "" {
		filter.OfficerID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("start"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			filter.RangeStart = &d
		}
	}
	if v := q.Get("end"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			filter.RangeEnd = &d
		}
	}

	leaves, err := h.leaveService.List(r.Context(), middleware.IdentityFromRequest(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}
