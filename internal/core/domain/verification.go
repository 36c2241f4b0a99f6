package domain

import (
	"bufio"
	"io"
	"slices"
	"strings"
)

// TestOutcome is the result of one test case in a JUnit report.
type TestOutcome string

const (
	// OutcomePassed means the test ran without failure or error.
	OutcomePassed TestOutcome = "passed"
	// OutcomeFailed means the test reported a failure.
	OutcomeFailed TestOutcome = "failed"
	// OutcomeError means the test errored before completing.
	OutcomeError TestOutcome = "error"
)

// TestResults maps a test id to its outcome. Skipped tests are absent.
type TestResults map[string]TestOutcome

// DefaultTestFiles is used when a test patch names no Python file.
var DefaultTestFiles = []string{"tests/reference.py", "tests/test_kerns.py", "tests/test_likelihoods.py"}

// TestBucket holds test ids for one transition category.
type TestBucket struct {
	Success []string `json:"success"`
	Failure []string `json:"failure"`
}

func newBucket() TestBucket {
	return TestBucket{Success: []string{}, Failure: []string{}}
}

// TestsStatus groups test ids by their pre-patch to post-patch transition.
type TestsStatus struct {
	FailToPass TestBucket `json:"FAIL_TO_PASS"`
	PassToPass TestBucket `json:"PASS_TO_PASS"`
	FailToFail TestBucket `json:"FAIL_TO_FAIL"`
	PassToFail TestBucket `json:"PASS_TO_FAIL"`
}

// NewTestsStatus returns a status with every bucket empty but non-nil, so it encodes as [] not null.
func NewTestsStatus() TestsStatus {
	return TestsStatus{
		FailToPass: newBucket(),
		PassToPass: newBucket(),
		FailToFail: newBucket(),
		PassToFail: newBucket(),
	}
}

// Classify sorts every test seen in either run into a transition bucket.
// A test missing from the pre-patch run counts as passed there; one missing
// from the post-patch run counts as failed. Errored tests fall in no bucket.
func Classify(pre, post TestResults) TestsStatus {
	seen := make(map[string]struct{}, len(pre)+len(post))
	for id := range pre {
		seen[id] = struct{}{}
	}
	for id := range post {
		seen[id] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	status := NewTestsStatus()
	for _, id := range ids {
		before, ok := pre[id]
		if !ok {
			before = OutcomePassed
		}
		after, ok := post[id]
		if !ok {
			after = OutcomeFailed
		}
		switch {
		case before == OutcomeFailed && after == OutcomePassed:
			status.FailToPass.Success = append(status.FailToPass.Success, id)
		case before == OutcomePassed && after == OutcomePassed:
			status.PassToPass.Success = append(status.PassToPass.Success, id)
		case before == OutcomeFailed && after == OutcomeFailed:
			status.FailToFail.Failure = append(status.FailToFail.Failure, id)
		case before == OutcomePassed && after == OutcomeFailed:
			status.PassToFail.Failure = append(status.PassToFail.Failure, id)
		}
	}
	return status
}

// Resolved is true when at least one test was fixed and nothing failed after the patch.
func (s TestsStatus) Resolved() bool {
	return len(s.FailToPass.Success) > 0 &&
		len(s.FailToFail.Failure) == 0 &&
		len(s.PassToFail.Failure) == 0
}

// VerificationResult is the per-instance entry written to results.json.
type VerificationResult struct {
	PatchIsNone              bool        `json:"patch_is_None"`
	PatchExists              bool        `json:"patch_exists"`
	PatchSuccessfullyApplied bool        `json:"patch_successfully_applied"`
	Resolved                 bool        `json:"resolved"`
	TestsStatus              TestsStatus `json:"tests_status"`
}

// NewVerificationResult returns the initial state before any run.
func NewVerificationResult() *VerificationResult {
	return &VerificationResult{PatchExists: true, TestsStatus: NewTestsStatus()}
}

// ModifiedPythonFiles lists the sorted, unique .py paths named by the
// "--- a/" and "+++ b/" headers of a unified diff.
func ModifiedPythonFiles(patch io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(patch)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "--- a/") && !strings.HasPrefix(line, "+++ b/") {
			continue
		}
		path := line[6:]
		if i := strings.IndexByte(path, '\t'); i >= 0 {
			path = path[:i]
		}
		path = strings.TrimSpace(path)
		if strings.HasSuffix(path, ".py") {
			seen[path] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	files := make([]string, 0, len(seen))
	for p := range seen {
		files = append(files, p)
	}
	slices.Sort(files)
	return files, nil
}
