package api

import (
	"alcyxob/fitness-portal/internal/report"
	"alcyxob/fitness-portal/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves monthly history reports.
type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type ReportExportResponse struct {
	URL        string    `json:"url"`
	ObjectKey  string    `json:"objectKey"`
	FileName   string    `json:"fileName"`
	Month      string    `json:"month" example:"2024-03"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// MapReportExportToResponse converts service.ReportExport to DTO
func MapReportExportToResponse(e *service.ReportExport) ReportExportResponse {
	return ReportExportResponse{
		URL:        e.URL,
		ObjectKey:  e.ObjectKey,
		FileName:   e.FileName,
		Month:      fmt.Sprintf("%04d-%02d", e.Year, int(e.Month)),
		Size:       e.Size,
		UploadedAt: e.UploadedAt,
		ExpiresAt:  e.ExpiresAt,
	}
}

// MonthlyReport godoc
// @Summary Download the monthly history report
// @Tags Reports
// @Produce application/pdf
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month 1-12"
// @Success 200 {file} file
// @Failure 400 {object} gin.H "Invalid year or month"
// @Failure 429 {object} gin.H "Rate limited"
// @Router /reports/monthly/{year}/{month} [get]
func (h *ReportHandler) MonthlyReport(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	pdf, err := h.reportService.MonthlyReport(c.Request.Context(), userID, year, month)
	if err != nil {
		respondServiceError(c, err, "rendering the report")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, service.ReportFileName(year, month)))
	c.Data(http.StatusOK, report.ContentType, pdf)
}

// ExportMonthlyReport godoc
// @Summary Store the monthly report and get a temporary download URL
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month 1-12"
// @Success 201 {object} ReportExportResponse
// @Failure 400 {object} gin.H "Invalid year or month"
// @Failure 429 {object} gin.H "Rate limited"
// @Failure 503 {object} gin.H "Export not configured"
// @Router /reports/monthly/{year}/{month}/export [post]
func (h *ReportHandler) ExportMonthlyReport(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	export, err := h.reportService.ExportMonthlyReport(c.Request.Context(), userID, year, month)
	if err != nil {
		respondServiceError(c, err, "exporting the report")
		return
	}
	c.JSON(http.StatusCreated, MapReportExportToResponse(export))
}

// ListExports godoc
// @Summary List archived reports
// @Description Newest first; every entry carries a freshly signed URL.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ReportExportResponse
// @Failure 503 {object} gin.H "Export not configured"
// @Router /reports/exports [get]
func (h *ReportHandler) ListExports(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	exports, err := h.reportService.ListExports(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "listing exported reports")
		return
	}
	responses := make([]ReportExportResponse, len(exports))
	for i := range exports {
		responses[i] = MapReportExportToResponse(&exports[i])
	}
	c.JSON(http.StatusOK, responses)
}
