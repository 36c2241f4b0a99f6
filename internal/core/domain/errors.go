package domain

import (
	"errors"
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrProjectNotFound is returned when a requested project profile does not exist.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrNoProjectSpecified is returned when a command needs a project name and none was given.
	ErrNoProjectSpecified = zerr.New("no project specified")

	// ErrInvalidProjectName is returned when a project name is invalid.
	ErrInvalidProjectName = zerr.New("project name can only contain alphanumeric characters, hyphens and underscores")

	// ErrInvalidStepKind is returned when a step declares an unknown kind.
	ErrInvalidStepKind = zerr.New("invalid step kind, expected one of: submodules, system, packages, copy, env, run")

	// ErrInvalidFailurePolicy is returned when a failure policy is neither 'halt' nor 'continue'.
	ErrInvalidFailurePolicy = zerr.New("invalid failure policy, expected 'halt' or 'continue'")

	// ErrEmptyStep is returned when a step has nothing to do.
	ErrEmptyStep = zerr.New("step has nothing to do")

	// ErrInvalidPin is returned when a pinned package version cannot be parsed.
	ErrInvalidPin = zerr.New("invalid pinned package version")

	// ErrInvalidEnvName is returned when an environment variable name is invalid.
	ErrInvalidEnvName = zerr.New("invalid environment variable name")

	// ErrWorkingDirNotFound is returned when the project working directory does not exist.
	ErrWorkingDirNotFound = zerr.New("working directory not found")

	// ErrBootstrapFailed is returned when one or more bootstrap steps failed.
	ErrBootstrapFailed = zerr.New("bootstrap failed")

	// ErrStepFailed is returned when a single step fails.
	ErrStepFailed = zerr.New("step failed")

	// ErrCommandFailed is returned when a rendered command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandParseFailed is returned when a command line is not valid shell.
	ErrCommandParseFailed = zerr.New("failed to parse command line")

	// ErrSourceNotFound is returned when a file to copy does not exist.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrCopyFailed is returned when copying a file fails.
	ErrCopyFailed = zerr.New("failed to copy file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrSettingsParseFailed is returned when process settings cannot be read from the environment.
	ErrSettingsParseFailed = zerr.New("failed to parse settings from environment")

	// ErrStoreCreateFailed is returned when the record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create record store directory")

	// ErrStoreReadFailed is returned when a record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read bootstrap record")

	// ErrStoreUnmarshalFailed is returned when a record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal bootstrap record")

	// ErrStoreMarshalFailed is returned when a record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal bootstrap record")

	// ErrStoreWriteFailed is returned when a record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write bootstrap record")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrInvalidInstanceID is returned when an instance id does not match owner__repo-123.
	ErrInvalidInstanceID = zerr.New("invalid instance id, expected owner__repo-number")

	// ErrInvalidManifest is returned when a task manifest fails validation.
	ErrInvalidManifest = zerr.New("invalid task manifest")

	// ErrImageNameRenderFailed is returned when the image name template cannot be rendered.
	ErrImageNameRenderFailed = zerr.New("failed to render image name")

	// ErrImageBuildFailed is returned when building a task image fails.
	ErrImageBuildFailed = zerr.New("image build failed")

	// ErrDockerfileNotFound is returned when a task directory has no Dockerfile.
	ErrDockerfileNotFound = zerr.New("dockerfile not found")

	// ErrContainerRunFailed is returned when the verification container cannot be run.
	ErrContainerRunFailed = zerr.New("verification container failed")

	// ErrTasksDirNotFound is returned when the tasks directory does not exist.
	ErrTasksDirNotFound = zerr.New("tasks directory not found")

	// ErrRepoNotFound is returned when the verification repository is not a git checkout.
	ErrRepoNotFound = zerr.New("repository not found or not a git checkout")

	// ErrRepoResetFailed is returned when the repository cannot be reset to the base commit.
	ErrRepoResetFailed = zerr.New("failed to reset repository")

	// ErrPatchApplyFailed is returned when a patch cannot be applied.
	ErrPatchApplyFailed = zerr.New("failed to apply patch")

	// ErrReportMissing is returned when the test runner produced no report.
	ErrReportMissing = zerr.New("test runner did not produce a report")

	// ErrReportParseFailed is returned when a JUnit report cannot be parsed.
	ErrReportParseFailed = zerr.New("failed to parse test report")

	// ErrResultMissing is returned when a verification container exits without leaving result.json.
	ErrResultMissing = zerr.New("verification container did not produce result.json")

	// ErrResultsWriteFailed is returned when the verification results cannot be written.
	ErrResultsWriteFailed = zerr.New("failed to write verification results")

	// ErrInvalidRepository is returned when a repository is not written as owner/name.
	ErrInvalidRepository = zerr.New("invalid repository, expected owner/name")

	// ErrInvalidPullRequest is returned when a pull request number is not a positive integer.
	ErrInvalidPullRequest = zerr.New("invalid pull request number")

	// ErrGitHubTokenMissing is returned when a GitHub query is attempted without GITHUB_TOKEN.
	ErrGitHubTokenMissing = zerr.New("GITHUB_TOKEN is not set")

	// ErrIssueQueryFailed is returned when the linked issues of a pull request cannot be fetched.
	ErrIssueQueryFailed = zerr.New("failed to query linked issues")

	// ErrVerificationFailed is returned when verification did not resolve the instance.
	ErrVerificationFailed = zerr.New("verification failed")
)

// ExitError carries the exit status of a failed command.
// It unwraps to ErrCommandFailed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return "exit status " + strconv.Itoa(e.Code)
}

func (e *ExitError) Unwrap() error {
	return ErrCommandFailed
}

// ExitCode extracts the exit status from err, or 0 when err carries none.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 0
}
