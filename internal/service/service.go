// Package service holds the portal's business rules. Handlers talk to it through the
// interfaces declared here; storage is reached only through the repository interfaces.
package service

//go:generate mockgen -destination=mocks/service_mocks.go -package=mocks alcyxob/fitness-portal/internal/service AuthService,CalendarService,CompletionService,ReportService,WorkoutService
