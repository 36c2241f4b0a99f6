package domain

import "path/filepath"

const (
	// PrepDirName is the name of the internal state directory.
	PrepDirName = ".prep"

	// RecordsDirName is the name of the bootstrap record directory.
	RecordsDirName = "records"

	// ConfigFileName is the name of the project profile file.
	ConfigFileName = "prep.yaml"

	// ResultsFileName is the name of the verification results file.
	ResultsFileName = "results.json"

	// ContainerResultFileName is the name of the result file copied out of a verification container.
	ContainerResultFileName = "result.json"

	// TestPatchFileName is the name of the patch holding the new tests.
	TestPatchFileName = "test.patch"

	// CodePatchFileName is the name of the patch holding the fix.
	CodePatchFileName = "code.patch"

	// VerificationScriptName is the name of the script run inside the verification container.
	VerificationScriptName = "run_verification.py"

	// DockerfileName is the name of the Dockerfile expected in each task directory.
	DockerfileName = "Dockerfile"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultRecordsPath returns the default path for bootstrap records under the given state dir.
func DefaultRecordsPath(stateDir string) string {
	if stateDir == "" {
		stateDir = PrepDirName
	}
	return filepath.Join(stateDir, RecordsDirName)
}
