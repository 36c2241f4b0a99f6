package domain

import "time"

// BootstrapRecord is the persisted summary of the last bootstrap of a project.
type BootstrapRecord struct {
	Project     string            `json:"project"`
	Fingerprint string            `json:"fingerprint"`
	Dir         string            `json:"dir,omitempty"`
	Succeeded   bool              `json:"succeeded"`
	FailedSteps []string          `json:"failed_steps,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// NewBootstrapRecord summarizes a report.
func NewBootstrapRecord(report *Report, fingerprint string, at time.Time) *BootstrapRecord {
	return &BootstrapRecord{
		Project:     report.Project,
		Fingerprint: fingerprint,
		Dir:         report.Dir,
		Succeeded:   !report.Failed() && !report.Halted,
		FailedSteps: report.FailedSteps(),
		Env:         report.Env.Clone(),
		Timestamp:   at.UTC(),
	}
}

// Stale reports whether the record was produced from a different profile definition.
func (r *BootstrapRecord) Stale(fingerprint string) bool {
	return r.Fingerprint != fingerprint
}
