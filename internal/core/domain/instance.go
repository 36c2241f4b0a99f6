package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// InstanceID identifies a task instance, e.g. "GPflow__GPflow-1234".
type InstanceID struct {
	Raw   string
	Owner string
	Repo  string
	PR    string
}

// ParseInstanceID splits an id of the form owner__repo-name-123.
func ParseInstanceID(raw string) (InstanceID, error) {
	owner, rest, ok := strings.Cut(raw, "__")
	if !ok || owner == "" || rest == "" {
		return InstanceID{}, zerr.With(ErrInvalidInstanceID, "instance_id", raw)
	}
	idx := strings.LastIndex(rest, "-")
	if idx <= 0 || idx == len(rest)-1 {
		return InstanceID{}, zerr.With(ErrInvalidInstanceID, "instance_id", raw)
	}
	pr := rest[idx+1:]
	for _, r := range pr {
		if r < '0' || r > '9' {
			return InstanceID{}, zerr.With(ErrInvalidInstanceID, "instance_id", raw)
		}
	}
	return InstanceID{Raw: raw, Owner: owner, Repo: rest[:idx], PR: pr}, nil
}

// String returns the raw id.
func (id InstanceID) String() string {
	return id.Raw
}
