package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Travelintrips/HRD/internal/httpx"
	"github.com/Travelintrips/HRD/internal/services"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reports *services.ReportService
	log     *zap.Logger
}

func NewReportHandler(reports *services.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: log}
}

// Attendance streams an XLSX export for ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *ReportHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_date", nil)
			return
		}
	}

	f, err := h.reports.AttendanceXLSX(r.Context(), from, to)
	if err != nil {
		h.log.Error("build attendance report", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_build_report", nil)
		return
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		h.log.Error("stream attendance report", zap.Error(err))
	}
}
