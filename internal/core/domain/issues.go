package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// IssueRef is an issue closed by a pull request.
type IssueRef struct {
	Number int
	URL    string
}

// ClosingIssues lists the issues a pull request closes when merged.
type ClosingIssues struct {
	Owner       string
	Repo        string
	PullRequest int
	// TotalCount may exceed len(Issues) when the query returned a single page.
	TotalCount int
	Issues     []IssueRef
}

// Multiple reports whether the pull request closes more than one issue.
// Such pull requests make ambiguous task instances.
func (c *ClosingIssues) Multiple() bool {
	return c.TotalCount > 1
}

// ParseRepository splits "owner/name".
func ParseRepository(full string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(full, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", zerr.With(ErrInvalidRepository, "repository", full)
	}
	return owner, name, nil
}

// ParsePullRequest parses a positive pull request number, accepting a leading '#'.
func ParsePullRequest(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(raw, "#"))
	if err != nil || n <= 0 {
		return 0, zerr.With(ErrInvalidPullRequest, "pr", raw)
	}
	return n, nil
}
