package http

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/attendance"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/leave"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/middleware"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// recentActivityLimit bounds the time entries and leaves embedded in the
// officer detail payload.
const recentActivityLimit = 10

type OfficerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListStations(w http.ResponseWriter, r *http.Request)
}

type officerHandlerImpl struct {
	officerService    officer.OfficerService
	attendanceService attendance.AttendanceService
	leaveService      leave.LeaveService
}

func NewOfficerHandler(
	officerService officer.OfficerService,
	attendanceService attendance.AttendanceService,
	leaveService leave.LeaveService,
) OfficerHandler {
	return &officerHandlerImpl{
		officerService:    officerService,
		attendanceService: attendanceService,
		leaveService:      leaveService,
	}
}

type officerDetailResponse struct {
	officer.OfficerResponse
	RecentTimeEntries []attendance.TimeEntryResponse `json:"recent_time_entries"`
	RecentLeaves      []leave.LeaveResponse          `json:"recent_leaves"`
}

// Create implements OfficerHandler.
func (h *officerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req officer.CreateOfficerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create officer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.officerService.Create(r.Context(), middleware.IdentityFromRequest(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Officer created", resp)
}

// Get implements OfficerHandler. The detail payload carries the
// officer's most recent time entries and leave applications.
func (h *officerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	identity := middleware.IdentityFromRequest(r)

	resp, err := h.officerService.Get(r.Context(), identity, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entries, _, err := h.attendanceService.List(r.Context(), identity, attendance.TimeEntryFilter{
		OfficerID: &id,
		Page:      1,
		Limit:     recentActivityLimit,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaves, err := h.leaveService.List(r.Context(), identity, leave.LeaveFilter{
		OfficerID: &id,
		Limit:     recentActivityLimit,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, officerDetailResponse{
		OfficerResponse:   resp,
		RecentTimeEntries: entries,
		RecentLeaves:      leaves,
	})
}

// List implements OfficerHandler.
func (h *officerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := officer.OfficerFilter{}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("station"); v != "" {
		filter.Station = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Normalize()

	officers, total, err := h.officerService.List(r.Context(), middleware.IdentityFromRequest(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, officers, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	})
}

// Update implements OfficerHandler.
func (h *officerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req officer.UpdateOfficerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update officer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.officerService.Update(r.Context(), middleware.IdentityFromRequest(r), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Officer updated", resp)
}

// Delete implements OfficerHandler.
func (h *officerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.officerService.Deactivate(r.Context(), middleware.IdentityFromRequest(r), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Officer deactivated", nil)
}

// ListStations implements OfficerHandler.
func (h *officerHandlerImpl) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.officerService.ListStations(r.Context(), middleware.IdentityFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stations)
}
