package service

import "github.com/xolan/tl/internal/config"

// Services bundles the application services for consumers that need
// more than one (currently the TUI).
type Services struct {
	Config config.Config
	Report *ReportService
}

// NewServices creates the service bundle for the given timelog path
// and configuration.
func NewServices(timelogPath string, cfg config.Config) *Services {
	return &Services{
		Config: cfg,
		Report: NewReportService(timelogPath, cfg),
	}
}
