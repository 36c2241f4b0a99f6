package ports

import "go.trai.ch/prep/internal/core/domain"

// ReportParser reads test reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=report_parser.go -destination=mocks/mock_report_parser.go -package=mocks
type ReportParser interface {
	// Parse reads the report at path into a test id to outcome map.
	Parse(path string) (domain.TestResults, error)
}
