package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/ui/style"
)

// Issues prints the issues a pull request closes and flags pull requests that close several.
func (a *App) Issues(ctx context.Context, repository, pr string) (*domain.ClosingIssues, error) {
	owner, name, err := domain.ParseRepository(repository)
	if err != nil {
		return nil, err
	}
	number, err := domain.ParsePullRequest(pr)
	if err != nil {
		return nil, err
	}

	result, err := a.issues.ClosingIssues(ctx, owner, name, number)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: closes %d issue(s)\n",
		style.Heading.Render(fmt.Sprintf("%s/%s#%d", owner, name, number)), result.TotalCount)
	for _, issue := range result.Issues {
		fmt.Fprintf(&sb, "  #%d %s\n", issue.Number, style.Dim.Render(issue.URL))
	}
	if hidden := result.TotalCount - len(result.Issues); hidden > 0 {
		fmt.Fprintf(&sb, "  ... and %d more\n", hidden)
	}
	if result.Multiple() {
		sb.WriteString(style.Notice.Render("  "+style.Warning+" linked to multiple issues") + "\n")
	}
	if _, err := io.WriteString(a.out, sb.String()); err != nil {
		return nil, err
	}
	return result, nil
}
