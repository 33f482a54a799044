package http

import (
	"net/http"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/dashboard"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/middleware"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetStats implements DashboardHandler.
func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetStats(r.Context(), middleware.IdentityFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
