package http

import (
	"fmt"
	"net/http"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/report"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/middleware"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Generate implements ReportHandler. The document goes back as a CSV
// attachment, not as a JSON envelope.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := report.Request{
		Type:  q.Get("type"),
		Start: q.Get("start"),
		End:   q.Get("end"),
	}

	doc, err := h.reportService.Generate(r.Context(), middleware.IdentityFromRequest(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}
