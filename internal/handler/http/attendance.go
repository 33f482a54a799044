package http

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/attendance"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/middleware"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListOnDuty(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.ClockIn(r.Context(), middleware.IdentityFromRequest(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", resp)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.ClockOut(r.Context(), middleware.IdentityFromRequest(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", resp)
}

// ListOnDuty implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListOnDuty(w http.ResponseWriter, r *http.Request) {
	entries, err := h.attendanceService.ListOnDuty(r.Context(), middleware.IdentityFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := attendance.TimeEntryFilter{}
	if v := q.Get("officer_id"); v != "" {
		filter.OfficerID = &v
	}
	if v := q.Get("start"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			filter.StartDate = &d
		}
	}
	if v := q.Get("end"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			// include the whole end day
			e := d.Add(24*time.Hour - time.Nanosecond)
			filter.EndDate = &e
		}
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Normalize()

	entries, total, err := h.attendanceService.List(r.Context(), middleware.IdentityFromRequest(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, entries, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	})
}
