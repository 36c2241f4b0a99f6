package ports

import (
	"context"

	"go.trai.ch/prep/internal/core/domain"
)

// IssueTracker looks up pull request metadata on a code host.
//
//go:generate go run go.uber.org/mock/mockgen -source=issues.go -destination=mocks/mock_issues.go -package=mocks
type IssueTracker interface {
	// ClosingIssues returns the issues the pull request closes when merged.
	ClosingIssues(ctx context.Context, owner, repo string, number int) (*domain.ClosingIssues, error)
}
