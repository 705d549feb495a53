package api

import (
	"alcyxob/fitness-portal/internal/report"
	"alcyxob/fitness-portal/internal/service"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_MonthlyReport(t *testing.T) {
	s := newTestServer(t)
	pdf := []byte("%PDF-1.3 fake")
	s.reports.EXPECT().MonthlyReport(gomock.Any(), s.userID, 2024, time.March).Return(pdf, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/reports/monthly/2024/3", nil, s.token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="monthly-report-2024-03.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, pdf, rec.Body.Bytes())
}

func TestReportHandler_MonthlyReportInvalidMonth(t *testing.T) {
	s := newTestServer(t)
	s.reports.EXPECT().MonthlyReport(gomock.Any(), s.userID, 2024, time.Month(0)).Return(nil, service.ErrInvalidMonth)

	rec := s.do(t, http.MethodGet, "/api/v1/reports/monthly/2024/0", nil, s.token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandler_Export(t *testing.T) {
	s := newTestServer(t)
	expires := time.Date(2024, 3, 5, 10, 45, 0, 0, time.UTC)
	s.reports.EXPECT().ExportMonthlyReport(gomock.Any(), s.userID, 2024, time.March).Return(&service.ReportExport{
		ObjectKey: "reports/abc/2024-03/x.pdf",
		FileName:  "monthly-report-2024-03.pdf",
		Year:      2024,
		Month:     time.March,
		Size:      1024,
		URL:       "https://s3.example.test/reports/abc/2024-03/x.pdf?sig",
		ExpiresAt: expires,
	}, nil)

	rec := s.do(t, http.MethodPost, "/api/v1/reports/monthly/2024/3/export", nil, s.token)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeJSON[ReportExportResponse](t, rec)
	assert.Equal(t, "reports/abc/2024-03/x.pdf", resp.ObjectKey)
	assert.Equal(t, "2024-03", resp.Month)
	assert.Equal(t, int64(1024), resp.Size)
	assert.True(t, expires.Equal(resp.ExpiresAt))
}

func TestReportHandler_ExportUnavailable(t *testing.T) {
	s := newTestServer(t)
	s.reports.EXPECT().ExportMonthlyReport(gomock.Any(), s.userID, 2024, time.March).Return(nil, service.ErrReportExportUnavailable)

	rec := s.do(t, http.MethodPost, "/api/v1/reports/monthly/2024/3/export", nil, s.token)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReportHandler_ListExports(t *testing.T) {
	s := newTestServer(t)
	s.reports.EXPECT().ListExports(gomock.Any(), s.userID).Return([]service.ReportExport{
		{ObjectKey: "b.pdf", Year: 2024, Month: time.March},
		{ObjectKey: "a.pdf", Year: 2024, Month: time.February},
	}, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/reports/exports", nil, s.token)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeJSON[[]ReportExportResponse](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-03", list[0].Month)
	assert.Equal(t, "2024-02", list[1].Month)
}
