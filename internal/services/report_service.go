package services

import (
	"tillkeeper/internal/domain"
	"tillkeeper/internal/repos"
)

// DefaultFastMoverLimit matches the original till report.
const DefaultFastMoverLimit = 5

type ReportService struct {
	Reports      *repos.ReportRepo
	DefaultLimit int
}

func NewReportService(reports *repos.ReportRepo, defaultLimit int) *ReportService {
	if defaultLimit <= 0 {
		defaultLimit = DefaultFastMoverLimit
	}
	return &ReportService{Reports: reports, DefaultLimit: defaultLimit}
}

// SalesSummary aggregates the whole sales log, one row per product that
// has sold at least once.
func (s *ReportService) SalesSummary() ([]domain.SalesSummaryRow, error) {
	return s.Reports.SalesSummary()
}

// TopFastMovers returns up to limit products ranked by units sold.
// A non-positive limit falls back to the configured default.
func (s *ReportService) TopFastMovers(limit int) ([]domain.FastMoverRow, error) {
	if limit <= 0 {
		limit = s.DefaultLimit
	}
	return s.Reports.FastMovers(limit)
}
