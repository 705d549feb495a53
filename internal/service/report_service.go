package service

import (
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/metrics"
	"alcyxob/fitness-portal/internal/report"
	"alcyxob/fitness-portal/internal/repository"
	"alcyxob/fitness-portal/internal/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrReportExportUnavailable = errors.New("report export is not configured")

// ReportExport points at a stored report through a temporary download URL.
type ReportExport struct {
	ObjectKey  string
	FileName   string
	Year       int
	Month      time.Month
	Size       int64
	UploadedAt time.Time
	URL        string
	ExpiresAt  time.Time
}

type ReportService interface {
	// MonthlyReport renders the owner's completions of the month as a PDF document.
	MonthlyReport(ctx context.Context, ownerID primitive.ObjectID, year int, month time.Month) ([]byte, error)
	// ExportMonthlyReport stores the rendered report and returns a presigned download URL.
	ExportMonthlyReport(ctx context.Context, ownerID primitive.ObjectID, year int, month time.Month) (*ReportExport, error)
	// ListExports returns the owner's stored reports, newest first, each with a fresh URL.
	ListExports(ctx context.Context, ownerID primitive.ObjectID) ([]ReportExport, error)
}

type reportService struct {
	calendarService CalendarService
	userRepo        repository.UserRepository
	uploadRepo      repository.ReportUploadRepository
	fileStorage     storage.FileStorage
	renderer        *report.Renderer
	metrics         *metrics.Manager
	presignExpiry   time.Duration
	now             domain.Clock
}

// NewReportService creates a report service. fileStorage may be nil, in which case exports
// fail with ErrReportExportUnavailable.
func NewReportService(
	calendarService CalendarService,
	userRepo repository.UserRepository,
	uploadRepo repository.ReportUploadRepository,
	fileStorage storage.FileStorage,
	renderer *report.Renderer,
	metricsManager *metrics.Manager,
	presignExpiry time.Duration,
	now domain.Clock,
) ReportService {
	if renderer == nil {
		renderer = report.NewRenderer()
	}
	if presignExpiry <= 0 {
		presignExpiry = storage.DefaultPresignedURLExpiry
	}
	if now == nil {
		now = time.Now
	}
	return &reportService{
		calendarService: calendarService,
		userRepo:        userRepo,
		uploadRepo:      uploadRepo,
		fileStorage:     fileStorage,
		renderer:        renderer,
		metrics:         metricsManager,
		presignExpiry:   presignExpiry,
		now:             now,
	}
}

func (s *reportService) MonthlyReport(ctx context.Context, ownerID primitive.ObjectID, year int, month time.Month) ([]byte, error) {
	pdf, err := s.render(ctx, ownerID, year, month)
	if err != nil {
		return nil, err
	}
	s.countRendered("download")
	return pdf, nil
}

func (s *reportService) ExportMonthlyReport(ctx context.Context, ownerID primitive.ObjectID, year int, month time.Month) (*ReportExport, error) {
	if s.fileStorage == nil {
		return nil, ErrReportExportUnavailable
	}

	pdf, err := s.render(ctx, ownerID, year, month)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("reports/%s/%04d-%02d/%s.pdf", ownerID.Hex(), year, int(month), uuid.NewString())
	if err := s.fileStorage.PutObject(ctx, objectKey, report.ContentType, pdf); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}

	upload := &domain.ReportUpload{
		OwnerID:     ownerID,
		Year:        year,
		Month:       month,
		S3ObjectKey: objectKey,
		FileName:    ReportFileName(year, month),
		ContentType: report.ContentType,
		Size:        int64(len(pdf)),
		UploadedAt:  s.now().UTC(),
	}
	export, err := s.presign(ctx, upload)
	if err != nil {
		s.discard(ctx, objectKey)
		return nil, err
	}
	if _, err := s.uploadRepo.Create(ctx, upload); err != nil {
		s.discard(ctx, objectKey)
		return nil, fmt.Errorf("record report upload: %w", err)
	}

	s.countRendered("export")
	log.Infof("exported report %s", objectKey)
	return export, nil
}

func (s *reportService) ListExports(ctx context.Context, ownerID primitive.ObjectID) ([]ReportExport, error) {
	if s.fileStorage == nil {
		return nil, ErrReportExportUnavailable
	}

	uploads, err := s.uploadRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list report uploads: %w", err)
	}

	exports := make([]ReportExport, 0, len(uploads))
	for i := range uploads {
		export, err := s.presign(ctx, &uploads[i])
		if err != nil {
			return nil, err
		}
		exports = append(exports, *export)
	}
	return exports, nil
}

// ReportFileName is the download name of a monthly report.
func ReportFileName(year int, month time.Month) string {
	return fmt.Sprintf("monthly-report-%04d-%02d.pdf", year, int(month))
}

func (s *reportService) presign(ctx context.Context, upload *domain.ReportUpload) (*ReportExport, error) {
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, upload.S3ObjectKey, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign report: %w", err)
	}
	return &ReportExport{
		ObjectKey:  upload.S3ObjectKey,
		FileName:   upload.FileName,
		Year:       upload.Year,
		Month:      upload.Month,
		Size:       upload.Size,
		UploadedAt: upload.UploadedAt,
		URL:        url,
		ExpiresAt:  s.now().Add(s.presignExpiry),
	}, nil
}

// discard removes an object nobody will be able to find. It still runs when the
// request context has been cancelled.
func (s *reportService) discard(ctx context.Context, objectKey string) {
	if err := s.fileStorage.DeleteObject(context.WithoutCancel(ctx), objectKey); err != nil {
		log.Errorf("failed to clean up report object %s: %s", objectKey, err)
	}
}

func (s *reportService) render(ctx context.Context, ownerID primitive.ObjectID, year int, month time.Month) ([]byte, error) {
	entries, err := s.calendarService.MonthlyEntries(ctx, ownerID, year, month)
	if err != nil {
		return nil, err
	}

	history := report.MonthlyHistory{
		Year:        year,
		Month:       month,
		GeneratedAt: s.now(),
		Rows:        report.RowsFromEntries(entries),
	}
	// The owner's name is decoration; a missing account still gets its report.
	if user, err := s.userRepo.GetByID(ctx, ownerID); err == nil {
		history.Owner = user.Name
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Warnf("load report owner %s: %s", ownerID.Hex(), err)
	}

	pdf, err := s.renderer.RenderBytes(history)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return pdf, nil
}

func (s *reportService) countRendered(kind string) {
	if s.metrics != nil {
		s.metrics.CounterReportsRendered.WithLabelValues(kind).Inc()
	}
}
