package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftbook/attendance-backend-go/internal/domain/report"
	"github.com/shiftbook/attendance-backend-go/internal/handler/http/response"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	DailySnapshot(w http.ResponseWriter, r *http.Request)
	EmployeeReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// DailySnapshot implements ReportHandler.
func (h *reportHandlerImpl) DailySnapshot(w http.ResponseWriter, r *http.Request) {
	result, err := func() (report.DailySnapshotResponse, error) {
		if date := r.URL.Query().Get("date"); date != "" {
			day, ok := validator.IsValidDate(date)
			if !ok {
				return report.DailySnapshotResponse{}, validator.ValidationErrors{{
					Field:   "date",
					Message: "date must be YYYY-MM-DD",
				}}
			}
			return h.reportService.GetDailySnapshot(r.Context(), &day)
		}
		return h.reportService.GetDailySnapshot(r.Context(), nil)
	}()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeReport implements ReportHandler.
func (h *reportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.reportService.GetEmployeeReport(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
