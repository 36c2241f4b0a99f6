// Package github looks up pull request metadata through the GitHub GraphQL API.
package github

import (
	"context"

	"github.com/shurcooL/githubv4"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/oauth2"
)

// closingIssuesPage bounds how many linked issues are listed; TotalCount is always exact.
const closingIssuesPage = 10

var _ ports.IssueTracker = (*Tracker)(nil)

// Tracker implements ports.IssueTracker.
type Tracker struct {
	client *githubv4.Client
	token  string
}

// NewTracker creates a Tracker for the GraphQL endpoint. An empty token is rejected
// at query time.
func NewTracker(endpoint, token string) *Tracker {
	httpClient := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	return &Tracker{
		client: githubv4.NewEnterpriseClient(endpoint, httpClient),
		token:  token,
	}
}

type closingIssuesQuery struct {
	Repository struct {
		PullRequest struct {
			ClosingIssuesReferences struct {
				TotalCount int
				Nodes      []struct {
					Number int
					URL    string
				}
			} `graphql:"closingIssuesReferences(first: $first)"`
		} `graphql:"pullRequest(number: $number)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// ClosingIssues returns the issues the pull request closes when merged.
func (t *Tracker) ClosingIssues(ctx context.Context, owner, repo string, number int) (*domain.ClosingIssues, error) {
	if t.token == "" {
		return nil, domain.ErrGitHubTokenMissing
	}

	var q closingIssuesQuery
	err := t.client.Query(ctx, &q, map[string]any{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(repo),
		"number": githubv4.Int(number), //nolint:gosec // Pull request numbers fit in int32
		"first":  githubv4.Int(closingIssuesPage),
	})
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrIssueQueryFailed.Error()),
			"repository", owner+"/"+repo), "pr", number)
	}

	refs := q.Repository.PullRequest.ClosingIssuesReferences
	out := &domain.ClosingIssues{
		Owner:       owner,
		Repo:        repo,
		PullRequest: number,
		TotalCount:  refs.TotalCount,
	}
	for _, n := range refs.Nodes {
		out.Issues = append(out.Issues, domain.IssueRef{Number: n.Number, URL: n.URL})
	}
	return out, nil
}
